package ports

import (
	"context"

	"opsdiag/models"

	"github.com/google/uuid"
)

// SubmissionRepository defines the interface for intake submission storage
type SubmissionRepository interface {
	// CreateSubmission stores a new intake submission
	CreateSubmission(ctx context.Context, submission *models.Submission) error

	// GetSubmission retrieves a submission by ID
	GetSubmission(ctx context.Context, id uuid.UUID) (*models.Submission, error)

	// ListSubmissions returns submissions newest first, optionally limited
	ListSubmissions(ctx context.Context, limit int) ([]*models.Submission, error)
}
