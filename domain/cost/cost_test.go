package cost

import (
	"testing"

	"opsdiag/domain/intake"
	"opsdiag/domain/track"
)

func mustResponses(t *testing.T, raw map[string]any) *intake.ResponseSet {
	t.Helper()
	rs, err := intake.New(raw)
	if err != nil {
		t.Fatalf("building responses: %v", err)
	}
	return rs
}

func TestParseHourlyRate(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{"Under $50/hour", 40},
		{"$50-$100/hour", 75},
		{"$100-$150/hour", 125},
		{"$150-$250/hour", 200},
		{"$250-$400/hour", 325},
		{"Over $400/hour", 500},
		{"", 150},
		{"no idea", 150},
	}

	for _, tt := range tests {
		if got := ParseHourlyRate(tt.answer); got != tt.want {
			t.Errorf("ParseHourlyRate(%q) = %d, want %d", tt.answer, got, tt.want)
		}
	}
}

func TestParseWorkHours(t *testing.T) {
	tests := []struct {
		answer string
		want   float64
	}{
		{"Under 40 hours", 35},
		{"40-50 hours", 45},
		{"50-60 hours", 55},
		{"60+ hours", 65},
		{"", 50},
	}

	for _, tt := range tests {
		if got := ParseWorkHours(tt.answer); got != tt.want {
			t.Errorf("ParseWorkHours(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestParseTeamSize(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{"2-5 people", 2},
		{"10+ people", 10},
		{"Just me", 3},
		{"", 3},
	}

	for _, tt := range tests {
		if got := ParseTeamSize(tt.answer); got != tt.want {
			t.Errorf("ParseTeamSize(%q) = %d, want %d", tt.answer, got, tt.want)
		}
	}
}

func TestParseRevenue(t *testing.T) {
	if got := ParseRevenue("$100k - $250k"); got != 175000 {
		t.Errorf("ParseRevenue mid band = %v, want 175000", got)
	}
	if got := ParseRevenue(""); got != 160000 {
		t.Errorf("ParseRevenue default = %v, want 160000", got)
	}
}

func TestCalculateTrackA_SingleWaster(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldTimeWasters: []string{"Fixing mistakes or redoing work"},
		intake.FieldHourlyRate:  "$100-$150/hour",
	})

	est := CalculateTrackA(rs, ParseHourlyRate(rs.Str(intake.FieldHourlyRate)))

	if est.Track != track.TrackA {
		t.Fatalf("track = %v, want A", est.Track)
	}
	if est.HourlyRate != 125 {
		t.Errorf("rate = %d, want 125", est.HourlyRate)
	}
	if est.AnnualCostLow != 62500 {
		t.Errorf("annual low = %d, want 62500 (10h * $125 * 50w)", est.AnnualCostLow)
	}
	if est.AnnualCostHigh != 93750 {
		t.Errorf("annual high = %d, want 93750 (15h * $125 * 50w)", est.AnnualCostHigh)
	}
	if est.AnnualCostMid != 78125 {
		t.Errorf("annual mid = %d, want 78125", est.AnnualCostMid)
	}
	if est.WasteHoursMin != 10 || est.WasteHoursMax != 15 || est.WasteHoursAvg != 12.5 {
		t.Errorf("hours = %v/%v/%v, want 10/15/12.5", est.WasteHoursMin, est.WasteHoursMax, est.WasteHoursAvg)
	}
	if est.TurnoverCost != 0 || est.TeamIdleCost != 0 || est.RevenueLeakage != 0 || est.GrowthBlocked != 0 {
		t.Error("Track B subtotals must stay zero on Track A")
	}
}

func TestCalculateTrackA_ContextSwitchingTax(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldTimeWasters: []string{"Being interrupted constantly"},
		intake.FieldWorkHours:   "60+ hours",
	})

	est := CalculateTrackA(rs, 100)

	// Base 8-12h plus tax on 65h*0.20=13h: min 8+10.4=18.4, max 12+15.6=27.6.
	if est.WasteHoursMin != 18.4 {
		t.Errorf("hours min = %v, want 18.4", est.WasteHoursMin)
	}
	if est.WasteHoursMax != 27.6 {
		t.Errorf("hours max = %v, want 27.6", est.WasteHoursMax)
	}
	if est.AnnualCostLow != 92000 {
		t.Errorf("annual low = %d, want 92000", est.AnnualCostLow)
	}
}

func TestCalculateTrackA_EmptyResponses(t *testing.T) {
	est := CalculateTrackA(intake.Empty(), DefaultHourlyRate)

	if est.WasteHoursMin != 0 || est.AnnualCostLow != 0 || est.AnnualCostHigh != 0 {
		t.Errorf("empty responses should yield zero cost, got %+v", est)
	}
	if est.Explanation == "" {
		t.Error("explanation must always be populated")
	}
}

func TestCalculateTrackB_TurnoverFromGrowthBlocker(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldGrowthBlocker: "Can't find/train good people",
	})

	est := CalculateTrackB(rs, 125)

	if est.Track != track.TrackB {
		t.Fatalf("track = %v, want B", est.Track)
	}
	if est.TurnoverCost != 30000 {
		t.Errorf("turnover = %d, want 30000 (2 departures x $15000)", est.TurnoverCost)
	}
	// Growth blocked: 30h * $125 * 50w * 0.35 margin.
	if est.GrowthBlocked != 65625 {
		t.Errorf("growth blocked = %d, want 65625", est.GrowthBlocked)
	}
}

func TestCalculateTrackB_Components(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldTeamSize:        "4 people",
		intake.FieldCapacityUtil:    "Comfortable - some open slots",
		intake.FieldTimeTheft:       []string{"Scheduling and rebooking", "Chasing payments/invoicing"},
		intake.FieldRevenueEstimate: "$100k - $250k",
	})

	est := CalculateTrackB(rs, 100)

	// Idle: 4 people * 4h * ($100*0.45) * 50w = 36000.
	if est.TeamIdleCost != 36000 {
		t.Errorf("team idle = %d, want 36000", est.TeamIdleCost)
	}
	// Leakage: 2 slots * $150 * 50w = 15000, plus 3% of 175000 = 5250.
	if est.RevenueLeakage != 20250 {
		t.Errorf("leakage = %d, want 20250", est.RevenueLeakage)
	}
	if est.TurnoverCost != 0 {
		t.Errorf("turnover = %d, want 0", est.TurnoverCost)
	}

	total := est.TurnoverCost + est.TeamIdleCost + est.RevenueLeakage + est.GrowthBlocked
	if est.AnnualCostMid != total {
		t.Errorf("mid = %d, want component sum %d", est.AnnualCostMid, total)
	}
	if est.AnnualCostLow != int(float64(total)*0.8) {
		t.Errorf("low = %d, want %d", est.AnnualCostLow, int(float64(total)*0.8))
	}
	if est.AnnualCostHigh != int(float64(total)*1.2) {
		t.Errorf("high = %d, want %d", est.AnnualCostHigh, int(float64(total)*1.2))
	}
}

func TestCalculateTrackB_FrustrationKeywords(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldFrustration: "Employees keep leaving and I have to start training all over again",
	})

	est := CalculateTrackB(rs, 100)

	if est.TurnoverCost != 30000 {
		t.Errorf("turnover = %d, want 30000", est.TurnoverCost)
	}
}

func TestCalculateTrackB_TeamDramaRaisesFloor(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldTimeTheft: []string{"Managing team drama or performance"},
	})

	est := CalculateTrackB(rs, 100)

	if est.TurnoverCost != 15000 {
		t.Errorf("turnover = %d, want 15000 (1 departure)", est.TurnoverCost)
	}
}

func TestCalculateTrackB_AtCapacityUsesRevenueShare(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldGrowthBlocker:   "Already at capacity but not profitable enough",
		intake.FieldRevenueEstimate: "$500k - $1M",
	})

	est := CalculateTrackB(rs, 100)

	if est.GrowthBlocked != 75000 {
		t.Errorf("growth blocked = %d, want 75000 (10%% of 750000)", est.GrowthBlocked)
	}
}

func TestCalculateTrackB_EmptyResponses(t *testing.T) {
	est := CalculateTrackB(intake.Empty(), DefaultHourlyRate)

	if est.AnnualCostMid != 0 {
		t.Errorf("empty responses mid = %d, want 0", est.AnnualCostMid)
	}
	if est.WasteHoursMin != 0 {
		t.Errorf("founder hours = %v, want 0", est.WasteHoursMin)
	}
}

func TestCalculate_Dispatch(t *testing.T) {
	rs := intake.Empty()

	if got := Calculate(rs, track.TrackA, 150).Track; got != track.TrackA {
		t.Errorf("dispatch A = %v", got)
	}
	if got := Calculate(rs, track.TrackB, 150).Track; got != track.TrackB {
		t.Errorf("dispatch B = %v", got)
	}
}
