package app

import (
	"context"
	"sync"

	"opsdiag/domain/diagnosis"
	"opsdiag/domain/intake"
	"opsdiag/internal"
	"opsdiag/internal/errors"
	"opsdiag/models"
	"opsdiag/ports"

	"golang.org/x/sync/semaphore"
)

// RescoreService recomputes diagnoses for every stored submission, e.g.
// after the pattern catalog changes. Submissions are independent, so runs
// are fanned out under a bounded semaphore.
type RescoreService struct {
	assembler   *diagnosis.Assembler
	submissions ports.SubmissionRepository
	diagnoses   ports.DiagnosisRepository
	logger      *internal.Logger
	sem         *semaphore.Weighted
}

// NewRescoreService creates a rescore service with the given concurrency
// bound (minimum 1).
func NewRescoreService(
	assembler *diagnosis.Assembler,
	submissions ports.SubmissionRepository,
	diagnoses ports.DiagnosisRepository,
	logger *internal.Logger,
	concurrency int64,
) *RescoreService {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &RescoreService{
		assembler:   assembler,
		submissions: submissions,
		diagnoses:   diagnoses,
		logger:      logger,
		sem:         semaphore.NewWeighted(concurrency),
	}
}

// RescoreOutcome reports one batch run.
type RescoreOutcome struct {
	Total    int `json:"total"`
	Rescored int `json:"rescored"`
	Skipped  int `json:"skipped"`
}

// RescoreAll recomputes and replaces the diagnosis for every submission.
// Submissions whose stored answers no longer validate are skipped, not
// fatal: the history keeps its previous record.
func (s *RescoreService) RescoreAll(ctx context.Context) (*RescoreOutcome, error) {
	submissions, err := s.submissions.ListSubmissions(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "listing submissions")
	}

	outcome := &RescoreOutcome{Total: len(submissions)}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, submission := range submissions {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, errors.Wrap(err, "acquiring rescore slot")
		}
		wg.Add(1)
		go func(sub *models.Submission) {
			defer wg.Done()
			defer s.sem.Release(1)

			ok := s.rescoreOne(ctx, sub)
			mu.Lock()
			if ok {
				outcome.Rescored++
			} else {
				outcome.Skipped++
			}
			mu.Unlock()
		}(submission)
	}

	wg.Wait()
	s.logger.Info("rescore complete: %d/%d submissions, %d skipped",
		outcome.Rescored, outcome.Total, outcome.Skipped)
	return outcome, nil
}

func (s *RescoreService) rescoreOne(ctx context.Context, sub *models.Submission) bool {
	rs, err := intake.New(map[string]any(sub.Answers))
	if err != nil {
		s.logger.Warn("skipping submission %s: %v", sub.ID, err)
		return false
	}

	d := s.assembler.Assemble(rs)
	record := RecordFromDiagnosis(sub, rs, d)
	if err := s.diagnoses.ReplaceForSubmission(ctx, record); err != nil {
		s.logger.Error("replacing diagnosis for %s: %v", sub.ID, err)
		return false
	}
	return true
}
