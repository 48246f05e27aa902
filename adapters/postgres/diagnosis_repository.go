package postgres

import (
	"context"
	"database/sql"
	"errors"

	"opsdiag/domain/core"
	"opsdiag/models"
	"opsdiag/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// DiagnosisRepositoryImpl implements DiagnosisRepository for PostgreSQL
type DiagnosisRepositoryImpl struct {
	db *sqlx.DB
}

// NewDiagnosisRepository creates a new PostgreSQL diagnosis repository
func NewDiagnosisRepository(db *sqlx.DB) ports.DiagnosisRepository {
	return &DiagnosisRepositoryImpl{db: db}
}

const diagnosisColumns = `
	id, submission_id, track,
	primary_key, primary_name, primary_score, secondary_key, secondary_score,
	hourly_rate, waste_hours_min, waste_hours_max,
	annual_cost_low, annual_cost_mid, annual_cost_high,
	turnover_cost, team_idle_cost, revenue_leakage, growth_blocked,
	trapped_scale, created_at`

// CreateDiagnosis stores a diagnosis record
func (r *DiagnosisRepositoryImpl) CreateDiagnosis(ctx context.Context, record *models.DiagnosisRecord) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO diagnoses (`+diagnosisColumns+`)
		VALUES (
			:id, :submission_id, :track,
			:primary_key, :primary_name, :primary_score, :secondary_key, :secondary_score,
			:hourly_rate, :waste_hours_min, :waste_hours_max,
			:annual_cost_low, :annual_cost_mid, :annual_cost_high,
			:turnover_cost, :team_idle_cost, :revenue_leakage, :growth_blocked,
			:trapped_scale, :created_at
		)
	`, record)
	return err
}

// GetDiagnosis retrieves a diagnosis by ID
func (r *DiagnosisRepositoryImpl) GetDiagnosis(ctx context.Context, id uuid.UUID) (*models.DiagnosisRecord, error) {
	var record models.DiagnosisRecord
	err := r.db.GetContext(ctx, &record, `
		SELECT `+diagnosisColumns+` FROM diagnoses WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("diagnosis", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetDiagnosisBySubmission retrieves the latest diagnosis for a submission
func (r *DiagnosisRepositoryImpl) GetDiagnosisBySubmission(ctx context.Context, submissionID uuid.UUID) (*models.DiagnosisRecord, error) {
	var record models.DiagnosisRecord
	err := r.db.GetContext(ctx, &record, `
		SELECT `+diagnosisColumns+` FROM diagnoses
		WHERE submission_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, submissionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("diagnosis for submission", submissionID.String())
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListDiagnoses returns diagnosis records newest first, optionally limited
func (r *DiagnosisRepositoryImpl) ListDiagnoses(ctx context.Context, limit int) ([]*models.DiagnosisRecord, error) {
	query := `SELECT ` + diagnosisColumns + ` FROM diagnoses ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var records []*models.DiagnosisRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

// ReplaceForSubmission removes prior records for a submission and stores the
// fresh one inside a transaction
func (r *DiagnosisRepositoryImpl) ReplaceForSubmission(ctx context.Context, record *models.DiagnosisRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM diagnoses WHERE submission_id = $1`, record.SubmissionID); err != nil {
		return err
	}
	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO diagnoses (`+diagnosisColumns+`)
		VALUES (
			:id, :submission_id, :track,
			:primary_key, :primary_name, :primary_score, :secondary_key, :secondary_score,
			:hourly_rate, :waste_hours_min, :waste_hours_max,
			:annual_cost_low, :annual_cost_mid, :annual_cost_high,
			:turnover_cost, :team_idle_cost, :revenue_leakage, :growth_blocked,
			:trapped_scale, :created_at
		)
	`, record); err != nil {
		return err
	}
	return tx.Commit()
}
