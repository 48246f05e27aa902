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

// SubmissionRepositoryImpl implements SubmissionRepository for PostgreSQL
type SubmissionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB) ports.SubmissionRepository {
	return &SubmissionRepositoryImpl{db: db}
}

// CreateSubmission stores a new intake submission
func (r *SubmissionRepositoryImpl) CreateSubmission(ctx context.Context, submission *models.Submission) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (id, client_name, client_email, answers, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, submission.ID, submission.ClientName, submission.ClientEmail, submission.Answers, submission.CreatedAt)
	return err
}

// GetSubmission retrieves a submission by ID
func (r *SubmissionRepositoryImpl) GetSubmission(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.GetContext(ctx, &submission, `
		SELECT id, client_name, client_email, answers, created_at
		FROM submissions
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("submission", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListSubmissions returns submissions newest first, optionally limited
func (r *SubmissionRepositoryImpl) ListSubmissions(ctx context.Context, limit int) ([]*models.Submission, error) {
	query := `
		SELECT id, client_name, client_email, answers, created_at
		FROM submissions
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var submissions []*models.Submission
	if err := r.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, err
	}
	return submissions, nil
}
