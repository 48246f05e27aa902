package cost

import (
	"opsdiag/domain/intake"
	"opsdiag/domain/track"
)

// Estimate is the tagged cost record for one diagnosis. Exactly one track is
// active per estimate: the Track B component subtotals stay zero on Track A
// and vice versa.
type Estimate struct {
	Track track.Track `json:"track"`

	// Weekly wasted hours. On Track B these hold the founder-equivalent
	// figure derived for cross-track display only.
	WasteHoursMin float64 `json:"waste_hours_min"`
	WasteHoursMax float64 `json:"waste_hours_max"`
	WasteHoursAvg float64 `json:"waste_hours_avg"`

	HourlyRate int `json:"hourly_rate"`

	AnnualCostLow  int `json:"annual_cost_low"`
	AnnualCostMid  int `json:"annual_cost_mid"`
	AnnualCostHigh int `json:"annual_cost_high"`

	// Track B component subtotals.
	TurnoverCost   int `json:"turnover_cost,omitempty"`
	TeamIdleCost   int `json:"team_idle_cost,omitempty"`
	RevenueLeakage int `json:"revenue_leakage,omitempty"`
	GrowthBlocked  int `json:"growth_blocked,omitempty"`

	Explanation string `json:"cost_explanation"`
}

// Calculate dispatches to the model selected by the track router.
func Calculate(rs *intake.ResponseSet, t track.Track, hourlyRate int) Estimate {
	if t == track.TrackB {
		return CalculateTrackB(rs, hourlyRate)
	}
	return CalculateTrackA(rs, hourlyRate)
}

