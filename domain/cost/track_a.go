package cost

import (
	"math"

	"opsdiag/domain/core"
	"opsdiag/domain/intake"
	"opsdiag/domain/track"
)

// wasteRange is the estimated weekly hours lost to one recurring activity.
type wasteRange struct {
	min float64
	max float64
}

// timeWasteKeys fixes iteration order over the waste map so fuzzy matching is
// reproducible across runs.
var timeWasteKeys = []string{
	"Scheduling and rebooking",
	"Chasing payments/invoicing",
	"Answering the same questions over and over",
	"Fixing mistakes or redoing work",
	"Managing team drama or performance",
	"Supply/inventory management",
	"Redoing or fixing work",
	"Being interrupted constantly",
	"Dealing with unhappy customers",
	"Scheduling, billing, or administrative",
	"Doing the actual service/work myself",
	"Training new people",
}

var timeWasteMap = map[string]wasteRange{
	"Scheduling and rebooking":                   {6, 10},
	"Chasing payments/invoicing":                 {5, 8},
	"Answering the same questions over and over": {5, 8},
	"Fixing mistakes or redoing work":            {10, 15},
	"Managing team drama or performance":         {8, 12},
	"Supply/inventory management":                {6, 10},
	"Redoing or fixing work":                     {10, 15},
	"Being interrupted constantly":               {8, 12},
	"Dealing with unhappy customers":             {8, 12},
	"Scheduling, billing, or administrative":     {6, 10},
	"Doing the actual service/work myself":       {20, 30},
	"Training new people":                        {10, 15},
}

const (
	// contextTaxRate is the share of the work week lost to switching when
	// the respondent reports constant interruption.
	contextTaxRate = 0.20

	trackAExplanation = "Opportunity cost - what you could earn doing strategic work instead of firefighting"
)

// CalculateTrackA computes the opportunity-cost estimate for decision-heavy,
// founder-led businesses: selected time wasters map to weekly hour ranges,
// annualized at the founder's effective rate over a 50-week year.
func CalculateTrackA(rs *intake.ResponseSet, hourlyRate int) Estimate {
	var hoursMin, hoursMax float64

	wasters := rs.SelectedWasters()
	for _, waster := range wasters {
		for _, key := range timeWasteKeys {
			if core.FuzzyContains(key, waster) {
				r := timeWasteMap[key]
				hoursMin += r.min
				hoursMax += r.max
				break
			}
		}
	}

	if hasInterruptionSignal(wasters) {
		tax := ParseWorkHours(rs.Str(intake.FieldWorkHours)) * contextTaxRate
		hoursMin += tax * 0.8
		hoursMax += tax * 1.2
	}

	annualLow := hoursMin * float64(hourlyRate) * WorkYearWeeks
	annualHigh := hoursMax * float64(hourlyRate) * WorkYearWeeks

	return Estimate{
		Track:          track.TrackA,
		WasteHoursMin:  round1(hoursMin),
		WasteHoursMax:  round1(hoursMax),
		WasteHoursAvg:  round1((hoursMin + hoursMax) / 2),
		HourlyRate:     hourlyRate,
		AnnualCostLow:  int(annualLow),
		AnnualCostHigh: int(annualHigh),
		AnnualCostMid:  int((annualLow + annualHigh) / 2),
		Explanation:    trackAExplanation,
	}
}

// hasInterruptionSignal reports whether any selected item denotes constant
// interruption or context switching (case-insensitive substring check).
func hasInterruptionSignal(wasters []string) bool {
	for _, w := range wasters {
		if core.ContainsFold(w, "interrupted") || core.ContainsFold(w, "switching") {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
