package app

import (
	"context"

	"opsdiag/domain/diagnosis"
	"opsdiag/domain/intake"
	"opsdiag/internal"
	"opsdiag/internal/errors"
	"opsdiag/models"
	"opsdiag/ports"

	"github.com/google/uuid"
)

// DiagnosisService runs the engine for incoming submissions and persists
// both the raw answers and the flattened result.
type DiagnosisService struct {
	assembler   *diagnosis.Assembler
	submissions ports.SubmissionRepository
	diagnoses   ports.DiagnosisRepository
	logger      *internal.Logger
}

// NewDiagnosisService creates a diagnosis service.
func NewDiagnosisService(
	assembler *diagnosis.Assembler,
	submissions ports.SubmissionRepository,
	diagnoses ports.DiagnosisRepository,
	logger *internal.Logger,
) *DiagnosisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DiagnosisService{
		assembler:   assembler,
		submissions: submissions,
		diagnoses:   diagnoses,
		logger:      logger,
	}
}

// DiagnoseResult pairs the full engine output with its stored record.
type DiagnoseResult struct {
	Diagnosis diagnosis.Diagnosis     `json:"diagnosis"`
	Record    *models.DiagnosisRecord `json:"record"`
}

// Diagnose validates the raw answers, runs the engine, and persists the
// submission and its diagnosis. The only failure modes are a structurally
// invalid answer map and storage errors; the engine itself cannot fail.
func (s *DiagnosisService) Diagnose(ctx context.Context, clientName, clientEmail string, answers map[string]any) (*DiagnoseResult, error) {
	rs, err := intake.New(answers)
	if err != nil {
		return nil, errors.Wrap(err, "invalid intake answers")
	}

	d := s.assembler.Assemble(rs)

	submission := models.NewSubmission(clientName, clientEmail, answers)
	if err := s.submissions.CreateSubmission(ctx, submission); err != nil {
		return nil, errors.Wrap(err, "storing submission")
	}

	record := RecordFromDiagnosis(submission, rs, d)
	if err := s.diagnoses.CreateDiagnosis(ctx, record); err != nil {
		return nil, errors.Wrap(err, "storing diagnosis")
	}

	s.logger.Info("diagnosed submission %s: track=%s primary=%s mid=$%d",
		submission.ID, d.Track, d.Match.Primary.Key, d.Cost.AnnualCostMid)

	return &DiagnoseResult{Diagnosis: d, Record: record}, nil
}

// RecordFromDiagnosis flattens an engine result into its persisted form.
func RecordFromDiagnosis(submission *models.Submission, rs *intake.ResponseSet, d diagnosis.Diagnosis) *models.DiagnosisRecord {
	record := &models.DiagnosisRecord{
		ID:             uuid.New(),
		SubmissionID:   submission.ID,
		Track:          string(d.Track),
		PrimaryKey:     d.Match.Primary.Key,
		PrimaryName:    d.Match.Primary.Name,
		PrimaryScore:   d.Match.Primary.Score,
		HourlyRate:     d.Cost.HourlyRate,
		WasteHoursMin:  d.Cost.WasteHoursMin,
		WasteHoursMax:  d.Cost.WasteHoursMax,
		AnnualCostLow:  d.Cost.AnnualCostLow,
		AnnualCostMid:  d.Cost.AnnualCostMid,
		AnnualCostHigh: d.Cost.AnnualCostHigh,
		TurnoverCost:   d.Cost.TurnoverCost,
		TeamIdleCost:   d.Cost.TeamIdleCost,
		RevenueLeakage: d.Cost.RevenueLeakage,
		GrowthBlocked:  d.Cost.GrowthBlocked,
		TrappedScale:   rs.Scale(intake.FieldTrappedScale, 0),
		CreatedAt:      submission.CreatedAt,
	}
	if d.Match.HasSecondary() {
		key := d.Match.Secondary.Key
		score := d.Match.Secondary.Score
		record.SecondaryKey = &key
		record.SecondaryScore = &score
	}
	return record
}
