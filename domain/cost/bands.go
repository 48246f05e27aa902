// Package cost implements the two annual-cost models: Track A (opportunity
// cost of founder time) and Track B (inferred operational cost). All band
// lookups have documented defaults so calculation never fails on sparse
// input.
package cost

import "strings"

// Defaults applied when a banded answer is missing or unrecognized.
const (
	DefaultHourlyRate = 150
	DefaultRevenue    = 160000
	DefaultWorkHours  = 50
	DefaultTeamSize   = 3

	// WorkYearWeeks annualizes weekly figures.
	WorkYearWeeks = 50
)

// ParseHourlyRate resolves a banded hourly-rate answer to a representative
// dollar figure.
func ParseHourlyRate(answer string) int {
	switch {
	case answer == "":
		return DefaultHourlyRate
	case strings.Contains(answer, "Under $50"):
		return 40
	case strings.Contains(answer, "$50-$100"):
		return 75
	case strings.Contains(answer, "$100-$150"):
		return 125
	case strings.Contains(answer, "$150-$250"):
		return 200
	case strings.Contains(answer, "$250-$400"):
		return 325
	case strings.Contains(answer, "Over $400"):
		return 500
	default:
		return DefaultHourlyRate
	}
}

// ParseRevenue resolves a banded annual-revenue answer to its midpoint.
func ParseRevenue(answer string) float64 {
	switch {
	case answer == "":
		return DefaultRevenue
	case strings.Contains(answer, "Under $100k"):
		return 75000
	case strings.Contains(answer, "$100k - $250k"):
		return 175000
	case strings.Contains(answer, "$250k - $500k"):
		return 375000
	case strings.Contains(answer, "$500k - $1M"):
		return 750000
	case strings.Contains(answer, "$1M - $2M"):
		return 1500000
	case strings.Contains(answer, "Over $2M"):
		return 2500000
	default:
		return DefaultRevenue
	}
}

// ParseWorkHours resolves a weekly work-hours band to a representative number.
func ParseWorkHours(answer string) float64 {
	switch {
	case strings.Contains(answer, "Under 40"):
		return 35
	case strings.Contains(answer, "40-50"):
		return 45
	case strings.Contains(answer, "50-60"):
		return 55
	case strings.Contains(answer, "60+"):
		return 65
	default:
		return DefaultWorkHours
	}
}

// ParseTeamSize extracts the leading integer from a team-size band such as
// "2-5 people". Unparsable answers fall back to the default.
func ParseTeamSize(answer string) int {
	i := 0
	for i < len(answer) && answer[i] >= '0' && answer[i] <= '9' {
		i++
	}
	if i == 0 {
		return DefaultTeamSize
	}
	n := 0
	for _, c := range answer[:i] {
		n = n*10 + int(c-'0')
	}
	return n
}
