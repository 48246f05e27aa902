package pattern

import (
	"reflect"
	"testing"

	"opsdiag/domain/intake"
)

func mustResponses(t *testing.T, raw map[string]any) *intake.ResponseSet {
	t.Helper()
	rs, err := intake.New(raw)
	if err != nil {
		t.Fatalf("building responses: %v", err)
	}
	return rs
}

func TestMatch_PrimaryFromBusFactor(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldBusFactor: "Everything stops",
	})

	result := Match(rs, Default())

	if result.Primary.Key != "founder_single_point_of_failure" {
		t.Errorf("primary = %s, want founder_single_point_of_failure", result.Primary.Key)
	}
	// "Everything stops" appears in the pool (+2) and in the weighted
	// bus factor check (+3).
	if result.Primary.Score != 5 {
		t.Errorf("primary score = %d, want 5", result.Primary.Score)
	}
}

func TestMatch_SecondaryOnlyWhenPositive(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldDecisionBacklog: "10+ things",
		intake.FieldMentalEnergy:    "Fried - brain is mush",
	})

	result := Match(rs, Default())

	if result.Primary.Key != "decision_overload" {
		t.Errorf("primary = %s, want decision_overload", result.Primary.Key)
	}
	if result.HasSecondary() {
		if result.Secondary.Score <= 0 {
			t.Errorf("secondary reported with score %d", result.Secondary.Score)
		}
		if result.Secondary.Key == result.Primary.Key {
			t.Error("secondary key equals primary key")
		}
	}
}

func TestMatch_EmptyResponsesStillReturnsPrimary(t *testing.T) {
	result := Match(intake.Empty(), Default())

	// Score-zero ties break by catalog order: the first pattern wins.
	if result.Primary.Key != Default().Keys()[0] {
		t.Errorf("primary = %s, want first catalog entry", result.Primary.Key)
	}
	if result.Primary.Score != 0 {
		t.Errorf("primary score = %d, want 0", result.Primary.Score)
	}
	if result.HasSecondary() {
		t.Error("secondary should be absent when nothing matched")
	}
}

func TestMatch_TriggerCountsOnce(t *testing.T) {
	// Two responses both match the same trigger; presence is counted once.
	rs := mustResponses(t, map[string]any{
		intake.FieldDecisionBacklog: "10+ things",
		intake.FieldTeamUtilization: "10+ things",
	})

	result := Match(rs, Default())

	if result.Primary.Key != "decision_overload" {
		t.Fatalf("primary = %s, want decision_overload", result.Primary.Key)
	}
	if result.Primary.Score != 2 {
		t.Errorf("decision_overload score = %d, want 2", result.Primary.Score)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	rs := mustResponses(t, map[string]any{
		intake.FieldBusFactor: "Everything stops",
		intake.FieldTimeTheft: []string{"Managing team drama or performance"},
		intake.FieldDocState:  "It's all in my head",
	})

	first := Match(rs, Default())
	for i := 0; i < 5; i++ {
		if got := Match(rs, Default()); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestCatalog_FallbackContent(t *testing.T) {
	c := Default()

	if got := c.Questions("no_such_pattern"); !reflect.DeepEqual(got, GenericQuestions()) {
		t.Errorf("unknown key questions = %v", got)
	}
	if got := c.Why("no_such_pattern"); got != genericWhy {
		t.Errorf("unknown key why = %q", got)
	}
	if qs := c.Questions("tribal_knowledge"); len(qs) != 3 {
		t.Errorf("tribal_knowledge has %d questions, want 3", len(qs))
	}
}

func TestCatalog_Shape(t *testing.T) {
	c := Default()

	if c.Len() != 15 {
		t.Fatalf("catalog has %d patterns, want 15", c.Len())
	}
	for _, key := range c.Keys() {
		p, ok := c.Get(key)
		if !ok {
			t.Fatalf("key %s missing from map", key)
		}
		if len(p.Triggers) == 0 {
			t.Errorf("pattern %s has no triggers", key)
		}
		if len(p.Questions) != 3 {
			t.Errorf("pattern %s has %d questions, want 3", key, len(p.Questions))
		}
		if p.Why == "" {
			t.Errorf("pattern %s has no explanation", key)
		}
	}
}
