package cost

import (
	"fmt"
	"math"

	"opsdiag/domain/core"
	"opsdiag/domain/intake"
	"opsdiag/domain/track"
)

// Track B constants. Every component is inferred from proxy signals; none of
// the intake questions ask about turnover or idle time directly.
const (
	replacementCostPerHead = 15000

	// Team members bill at a fraction of the founder's rate.
	teamRateShare = 0.45

	// Lost bookable slots per week when scheduling churn is reported, at a
	// service price of 1.5x the founder's hourly rate.
	lostSlotsPerWeek   = 2
	servicePriceFactor = 1.5

	// Share of annual revenue leaked to slow payment collection.
	paymentLeakShare = 0.03

	// Recoverable founder hours per week when growth is blocked by hiring
	// or missing systems, taken at a 35% profit margin.
	blockedHoursPerWeek = 30
	profitMargin        = 0.35

	// Share of revenue treated as blocked when at capacity but unprofitable.
	unprofitableShare = 0.10

	// Reported range is a fixed +-20% confidence band around the total.
	confidenceBand = 0.20
)

var frustrationTurnoverWords = []string{"employee", "turnover", "quit", "leaving", "hiring"}

// CalculateTrackB computes the operational-cost estimate for time-bound,
// standardized service businesses. Four components are inferred and summed:
// turnover, team idle capacity, revenue leakage, and blocked growth.
func CalculateTrackB(rs *intake.ResponseSet, hourlyRate int) Estimate {
	growthBlocker := rs.Str(intake.FieldGrowthBlocker)
	rate := float64(hourlyRate)

	// 1. Turnover, inferred from retention signals.
	departures := 0
	if core.FuzzyContains(growthBlocker, "Can't find/train good people") {
		departures = 2
	}
	frustration := rs.Str(intake.FieldFrustration)
	for _, word := range frustrationTurnoverWords {
		if core.ContainsFold(frustration, word) {
			departures = max(departures, 2)
			break
		}
	}
	if rs.Has(intake.FieldTimeTheft, "Managing team drama or performance") {
		departures = max(departures, 1)
	}
	turnoverCost := float64(departures * replacementCostPerHead)

	// 2. Team idle capacity.
	teamSize := ParseTeamSize(rs.Str(intake.FieldTeamSize))
	capacity := rs.Str(intake.FieldCapacityUtil)
	absenceImpact := rs.Str(intake.FieldAbsenceImpact)

	idleHoursPerWeek := 0
	demandProblem := core.FuzzyContains(capacity, "Struggling to fill appointments") ||
		core.FuzzyContains(growthBlocker, "Not enough demand")
	switch {
	case demandProblem:
		idleHoursPerWeek = teamSize * 10
	case core.FuzzyContains(capacity, "Comfortable - some open slots"):
		idleHoursPerWeek = teamSize * 4
	case absenceImpact == "Everything stops" || absenceImpact == "Appointments get rescheduled":
		idleHoursPerWeek = teamSize * 3
	}
	teamIdleCost := float64(idleHoursPerWeek) * rate * teamRateShare * WorkYearWeeks

	// 3. Revenue leakage.
	revenueLeakage := 0.0
	if rs.Has(intake.FieldTimeTheft, "Scheduling and rebooking") {
		revenueLeakage += lostSlotsPerWeek * rate * servicePriceFactor * WorkYearWeeks
	}
	if rs.Has(intake.FieldTimeTheft, "Chasing payments/invoicing") {
		revenueLeakage += estimatedRevenue(rs) * paymentLeakShare
	}

	// 4. Growth blocked. The two computations are mutually exclusive per
	// growth blocker value.
	growthBlocked := 0.0
	if growthBlocker == "Can't find/train good people" || growthBlocker == "Don't have systems to scale" {
		growthBlocked = blockedHoursPerWeek * rate * WorkYearWeeks * profitMargin
	}
	if core.FuzzyContains(growthBlocker, "Already at capacity but not profitable enough") {
		growthBlocked = estimatedRevenue(rs) * unprofitableShare
	}

	total := turnoverCost + teamIdleCost + revenueLeakage + growthBlocked

	// Founder-equivalent hours, for cross-track display only.
	founderHours := 0.0
	if hourlyRate > 0 {
		founderHours = math.Round((turnoverCost + revenueLeakage) / (rate * WorkYearWeeks))
	}

	return Estimate{
		Track:          track.TrackB,
		WasteHoursMin:  founderHours,
		WasteHoursMax:  founderHours,
		WasteHoursAvg:  founderHours,
		HourlyRate:     hourlyRate,
		AnnualCostLow:  int(total * (1 - confidenceBand)),
		AnnualCostHigh: int(total * (1 + confidenceBand)),
		AnnualCostMid:  int(total),
		TurnoverCost:   int(turnoverCost),
		TeamIdleCost:   int(teamIdleCost),
		RevenueLeakage: int(revenueLeakage),
		GrowthBlocked:  int(growthBlocked),
		Explanation: fmt.Sprintf(
			"Operational costs: Turnover ($%dk estimated from retention signals), team idle ($%dk), revenue leakage ($%dk), growth blocked ($%dk). NOT based on billable hours.",
			int(turnoverCost)/1000, int(teamIdleCost)/1000, int(revenueLeakage)/1000, int(growthBlocked)/1000),
	}
}

// estimatedRevenue prefers the current revenue estimate and falls back to the
// legacy revenue band.
func estimatedRevenue(rs *intake.ResponseSet) float64 {
	answer := rs.Str(intake.FieldRevenueEstimate)
	if answer == "" {
		answer = rs.Str(intake.FieldRevenue)
	}
	return ParseRevenue(answer)
}
