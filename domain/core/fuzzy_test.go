package core

import "testing"

func TestFuzzyContains(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"exact match", "Everything stops", "Everything stops", true},
		{"needle inside haystack", "stops", "Everything stops", true},
		{"haystack inside needle", "Everything stops", "stops", true},
		{"no overlap", "Scheduling and rebooking", "Chasing payments", false},
		{"case sensitive", "everything stops", "Everything stops", false},
		{"empty needle", "", "Everything stops", false},
		{"empty haystack", "Everything stops", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyContains(tt.a, tt.b); got != tt.want {
				t.Errorf("FuzzyContains(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Being Interrupted Constantly", "interrupted") {
		t.Error("expected case-insensitive match")
	}
	if ContainsFold("Fixing mistakes", "interrupted") {
		t.Error("unexpected match")
	}
}
