package app

import (
	"context"
	"math"

	"opsdiag/internal/errors"
	"opsdiag/ports"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// StatsService computes admin aggregates over the stored diagnosis history.
type StatsService struct {
	diagnoses ports.DiagnosisRepository
}

// NewStatsService creates a stats service.
func NewStatsService(diagnoses ports.DiagnosisRepository) *StatsService {
	return &StatsService{diagnoses: diagnoses}
}

// Summary is the aggregate view over all stored diagnoses.
type Summary struct {
	Total         int            `json:"total"`
	ByTrack       map[string]int `json:"by_track"`
	ByPrimary     map[string]int `json:"by_primary"`
	MeanMidCost   float64        `json:"mean_mid_cost"`
	MedianMidCost float64        `json:"median_mid_cost"`
	P90MidCost    float64        `json:"p90_mid_cost"`

	// TrappedCostCorrelation is the Pearson correlation between the
	// respondent's trapped-scale answer and the mid cost estimate. NaN is
	// reported as 0 (too few or constant samples).
	TrappedCostCorrelation float64 `json:"trapped_cost_correlation"`
}

// Summarize aggregates the full diagnosis history.
func (s *StatsService) Summarize(ctx context.Context) (*Summary, error) {
	records, err := s.diagnoses.ListDiagnoses(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "listing diagnoses")
	}

	summary := &Summary{
		Total:     len(records),
		ByTrack:   make(map[string]int),
		ByPrimary: make(map[string]int),
	}
	if len(records) == 0 {
		return summary, nil
	}

	midCosts := make([]float64, 0, len(records))
	trapped := make([]float64, 0, len(records))
	for _, r := range records {
		summary.ByTrack[r.Track]++
		summary.ByPrimary[r.PrimaryKey]++
		midCosts = append(midCosts, float64(r.AnnualCostMid))
		trapped = append(trapped, float64(r.TrappedScale))
	}

	if summary.MeanMidCost, err = stats.Mean(midCosts); err != nil {
		return nil, errors.Wrap(err, "computing mean")
	}
	if summary.MedianMidCost, err = stats.Median(midCosts); err != nil {
		return nil, errors.Wrap(err, "computing median")
	}
	if summary.P90MidCost, err = stats.Percentile(midCosts, 90); err != nil {
		return nil, errors.Wrap(err, "computing p90")
	}

	if corr := stat.Correlation(trapped, midCosts, nil); !math.IsNaN(corr) {
		summary.TrappedCostCorrelation = corr
	}

	return summary, nil
}
