// Package memory provides in-memory repository implementations used when no
// database is configured, and by tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"opsdiag/domain/core"
	"opsdiag/models"
	"opsdiag/ports"

	"github.com/google/uuid"
)

// SubmissionRepository is a mutex-guarded in-memory submission store.
type SubmissionRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*models.Submission
}

// NewSubmissionRepository creates an empty in-memory submission repository.
func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{items: make(map[uuid.UUID]*models.Submission)}
}

func (r *SubmissionRepository) CreateSubmission(_ context.Context, submission *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *submission
	r.items[submission.ID] = &stored
	return nil
}

func (r *SubmissionRepository) GetSubmission(_ context.Context, id uuid.UUID) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	submission, ok := r.items[id]
	if !ok {
		return nil, core.NewNotFoundError("submission", id.String())
	}
	copied := *submission
	return &copied, nil
}

func (r *SubmissionRepository) ListSubmissions(_ context.Context, limit int) ([]*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Submission, 0, len(r.items))
	for _, s := range r.items {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DiagnosisRepository is a mutex-guarded in-memory diagnosis store.
type DiagnosisRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*models.DiagnosisRecord
}

// NewDiagnosisRepository creates an empty in-memory diagnosis repository.
func NewDiagnosisRepository() *DiagnosisRepository {
	return &DiagnosisRepository{items: make(map[uuid.UUID]*models.DiagnosisRecord)}
}

func (r *DiagnosisRepository) CreateDiagnosis(_ context.Context, record *models.DiagnosisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *record
	r.items[record.ID] = &stored
	return nil
}

func (r *DiagnosisRepository) GetDiagnosis(_ context.Context, id uuid.UUID) (*models.DiagnosisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.items[id]
	if !ok {
		return nil, core.NewNotFoundError("diagnosis", id.String())
	}
	copied := *record
	return &copied, nil
}

func (r *DiagnosisRepository) GetDiagnosisBySubmission(_ context.Context, submissionID uuid.UUID) (*models.DiagnosisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *models.DiagnosisRecord
	for _, record := range r.items {
		if record.SubmissionID != submissionID {
			continue
		}
		if latest == nil || record.CreatedAt.After(latest.CreatedAt) {
			latest = record
		}
	}
	if latest == nil {
		return nil, core.NewNotFoundError("diagnosis for submission", submissionID.String())
	}
	copied := *latest
	return &copied, nil
}

func (r *DiagnosisRepository) ListDiagnoses(_ context.Context, limit int) ([]*models.DiagnosisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.DiagnosisRecord, 0, len(r.items))
	for _, record := range r.items {
		copied := *record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *DiagnosisRepository) ReplaceForSubmission(_ context.Context, record *models.DiagnosisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.items {
		if existing.SubmissionID == record.SubmissionID {
			delete(r.items, id)
		}
	}
	stored := *record
	r.items[record.ID] = &stored
	return nil
}

// Interface checks.
var (
	_ ports.SubmissionRepository = (*SubmissionRepository)(nil)
	_ ports.DiagnosisRepository  = (*DiagnosisRepository)(nil)
)
