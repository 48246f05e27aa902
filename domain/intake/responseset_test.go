package intake

import (
	"testing"

	"opsdiag/domain/core"
)

func TestNew_AcceptsJSONShapes(t *testing.T) {
	rs, err := New(map[string]any{
		FieldBusinessType: "Decision-heavy service (projects, strategy, approvals)",
		FieldTimeTheft:    []any{"Fixing mistakes or redoing work"},
		FieldTimeWasters:  []string{"Scheduling and rebooking"},
		FieldTrappedScale: float64(8),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rs.Str(FieldBusinessType); got != "Decision-heavy service (projects, strategy, approvals)" {
		t.Errorf("Str(business_type) = %q", got)
	}
	if !rs.Has(FieldTimeTheft, "Fixing mistakes or redoing work") {
		t.Error("expected time_theft membership")
	}
	if got := rs.Scale(FieldTrappedScale, 5); got != 8 {
		t.Errorf("Scale(trapped_scale) = %d, want 8", got)
	}
}

func TestNew_RejectsStructurallyInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"map value", map[string]any{FieldVent: map[string]any{"nested": true}}},
		{"list of numbers", map[string]any{FieldTimeTheft: []any{1, 2}}},
		{"bool value", map[string]any{FieldDocState: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !core.IsInvalidInputError(err) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAccessorDefaults(t *testing.T) {
	rs := Empty()

	if got := rs.Str(FieldBusFactor); got != "" {
		t.Errorf("Str on empty set = %q, want empty", got)
	}
	if got := rs.StrOr(FieldWorkHours, "50-60 hours"); got != "50-60 hours" {
		t.Errorf("StrOr fallback = %q", got)
	}
	if got := rs.Scale(FieldTrappedScale, 5); got != 5 {
		t.Errorf("Scale fallback = %d, want 5", got)
	}
	if pool := rs.CandidatePool(); len(pool) != 0 {
		t.Errorf("CandidatePool on empty set has %d entries", len(pool))
	}
}

func TestCandidatePool_DropsEmptyAndKeepsOrder(t *testing.T) {
	rs, err := New(map[string]any{
		FieldPileUp:      []string{"My inbox", ""},
		FieldTimeWasters: []string{"Training new people"},
		FieldBusFactor:   "Everything stops",
		FieldDocState:    "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"My inbox", "Training new people", "Everything stops"}
	got := rs.CandidatePool()
	if len(got) != len(want) {
		t.Fatalf("pool = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pool[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
