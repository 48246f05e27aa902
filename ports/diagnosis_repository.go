package ports

import (
	"context"

	"opsdiag/models"

	"github.com/google/uuid"
)

// DiagnosisRepository defines the interface for persisted diagnosis records
type DiagnosisRepository interface {
	// CreateDiagnosis stores a diagnosis record
	CreateDiagnosis(ctx context.Context, record *models.DiagnosisRecord) error

	// GetDiagnosis retrieves a diagnosis by ID
	GetDiagnosis(ctx context.Context, id uuid.UUID) (*models.DiagnosisRecord, error)

	// GetDiagnosisBySubmission retrieves the latest diagnosis for a submission
	GetDiagnosisBySubmission(ctx context.Context, submissionID uuid.UUID) (*models.DiagnosisRecord, error)

	// ListDiagnoses returns diagnosis records newest first, optionally limited
	ListDiagnoses(ctx context.Context, limit int) ([]*models.DiagnosisRecord, error)

	// ReplaceForSubmission removes prior records for a submission and stores
	// the fresh one (used by batch rescoring after catalog changes)
	ReplaceForSubmission(ctx context.Context, record *models.DiagnosisRecord) error
}
