// Package testkit provides canned intake submissions for tests and demos.
package testkit

import "opsdiag/domain/intake"

// TimeBoundAnswers is a typical Track B submission: an appointment-driven
// service with retention and scheduling churn.
func TimeBoundAnswers() map[string]any {
	return map[string]any{
		intake.FieldBusinessType:    "Time-bound service (appointments, shifts, on-site work)",
		intake.FieldHourlyRate:      "$100-$150/hour",
		intake.FieldAbsenceImpact:   "Everything stops",
		intake.FieldCapacityUtil:    "Mostly booked",
		intake.FieldGrowthBlocker:   "Can't find/train good people",
		intake.FieldDocState:        "It's all in my head",
		intake.FieldRevenueEstimate: "$100k - $250k",
		intake.FieldTimeTheft:       []string{"Managing team drama or performance", "Scheduling and rebooking"},
		intake.FieldFrustration:     "Employees keep leaving and I have to start training all over again",
		intake.FieldWorkHours:       "60+ hours",
		intake.FieldTrappedScale:    9,
		intake.FieldVision:          "I could take a week off without worrying the place would fall apart",
	}
}

// DecisionHeavyAnswers is a typical Track A submission: a project business
// bottlenecked on founder decisions and reviews.
func DecisionHeavyAnswers() map[string]any {
	return map[string]any{
		intake.FieldBusinessType:    "Decision-heavy service (projects, strategy, approvals)",
		intake.FieldHourlyRate:      "$250-$400/hour",
		intake.FieldDecisionBacklog: "10+ things",
		intake.FieldMentalEnergy:    "Fried - brain is mush",
		intake.FieldDocState:        "I have notes everywhere for reference",
		intake.FieldDocUsage:        "Rarely - they ask me instead",
		intake.FieldTimeTheft:       []string{"Answering the same questions over and over", "Fixing mistakes or redoing work"},
		intake.FieldWorkHours:       "50-60 hours",
		intake.FieldTrappedScale:    8,
		intake.FieldVision:          "I could spend time selling instead of reviewing every deliverable",
		intake.FieldFrustration:     "My brain never stops - decisions all day every day",
	}
}

// FounderLedAnswers is a Track A submission where the founder is the product.
func FounderLedAnswers() map[string]any {
	return map[string]any{
		intake.FieldBusinessType:  "Primarily founder-led expertise",
		intake.FieldHourlyRate:    "Over $400/hour",
		intake.FieldRevenueDepend: "Goes to zero",
		intake.FieldDelegationFear: "Quality won't match my standard",
		intake.FieldDocState:      "No - it's in my head and changes every time",
		intake.FieldTimeTheft:     []string{"Doing the actual service/work myself"},
		intake.FieldWorkHours:     "60+ hours",
		intake.FieldTrappedScale:  10,
		intake.FieldVision:        "The business runs without me needing to be in every client interaction",
		intake.FieldFrustration:   "Clients hired me, not my company - I AM the product",
	}
}

// MustResponses builds a ResponseSet from raw answers, panicking on invalid
// fixture data. Only for tests and demo wiring.
func MustResponses(raw map[string]any) *intake.ResponseSet {
	rs, err := intake.New(raw)
	if err != nil {
		panic(err)
	}
	return rs
}
