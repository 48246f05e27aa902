// Package intake holds the normalized view over raw questionnaire answers.
// A ResponseSet is built once per diagnostic run and never mutated; the rest
// of the engine reads it through typed accessors with documented defaults.
package intake

import (
	"fmt"

	"opsdiag/domain/core"
)

// Field names as they arrive from the intake form. Values are either a single
// string, a list of strings, or a 1-10 integer scale.
const (
	FieldBusinessType     = "business_type"
	FieldHourlyRate       = "hourly_rate"
	FieldDocState         = "doc_state"
	FieldDocUsage         = "doc_usage"
	FieldCapacityUtil     = "capacity_utilization"
	FieldGrowthBlocker    = "growth_blocker"
	FieldFrustration      = "biggest_frustration"
	FieldRevenueEstimate  = "current_revenue_estimate"
	FieldRevenue          = "revenue"
	FieldTeamSize         = "team_size"
	FieldRole             = "role"
	FieldPileUp           = "pile_up"
	FieldTimeWasters      = "time_wasters"
	FieldTimeTheft        = "time_theft"
	FieldTrackingMethod   = "tracking_method"
	FieldBusFactor        = "bus_factor"
	FieldWorkHours        = "work_hours"
	FieldTrappedScale     = "trapped_scale"
	FieldVision           = "vision"
	FieldLearningMethod   = "learning_method"
	FieldVent             = "vent"
	FieldAbsenceImpact    = "absence_impact"
	FieldTeamUtilization  = "team_utilization"
	FieldDecisionBacklog  = "decision_backlog"
	FieldMentalEnergy     = "mental_energy"
	FieldRevenueDepend    = "revenue_dependency"
	FieldDelegationFear   = "delegation_fear"
)

// ResponseSet is an immutable normalized view over raw intake answers.
type ResponseSet struct {
	strings map[string]string
	lists   map[string][]string
	scales  map[string]int
}

// New builds a ResponseSet from caller-supplied raw answers. Values must be a
// string, a list of strings ([]string or []any of strings, as JSON decoding
// produces), or an integer scale (int or float64). Anything else is rejected
// with core.ErrInvalidInput; missing fields are fine and fall back to the
// accessor defaults.
func New(raw map[string]any) (*ResponseSet, error) {
	rs := &ResponseSet{
		strings: make(map[string]string),
		lists:   make(map[string][]string),
		scales:  make(map[string]int),
	}

	for field, value := range raw {
		switch v := value.(type) {
		case nil:
			// Absent field, same as not supplied.
		case string:
			rs.strings[field] = v
		case []string:
			list := make([]string, len(v))
			copy(list, v)
			rs.lists[field] = list
		case []any:
			list := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, core.NewInvalidInputError(field, fmt.Sprintf("list entry must be a string, got %T", item))
				}
				list = append(list, s)
			}
			rs.lists[field] = list
		case int:
			rs.scales[field] = v
		case float64:
			rs.scales[field] = int(v)
		default:
			return nil, core.NewInvalidInputError(field, fmt.Sprintf("unsupported value type %T", value))
		}
	}

	return rs, nil
}

// Empty returns a ResponseSet with no answers at all. Every accessor falls
// back to its default, so a complete diagnosis is still produced.
func Empty() *ResponseSet {
	rs, _ := New(nil)
	return rs
}

// Str returns the single-string answer for field, or "" when absent.
func (rs *ResponseSet) Str(field string) string {
	return rs.strings[field]
}

// StrOr returns the single-string answer for field, or fallback when absent.
func (rs *ResponseSet) StrOr(field, fallback string) string {
	if v, ok := rs.strings[field]; ok && v != "" {
		return v
	}
	return fallback
}

// List returns the multi-select answer for field, or nil when absent.
func (rs *ResponseSet) List(field string) []string {
	return rs.lists[field]
}

// Has reports whether the multi-select answer for field contains value
// (exact membership, not fuzzy).
func (rs *ResponseSet) Has(field, value string) bool {
	for _, v := range rs.lists[field] {
		if v == value {
			return true
		}
	}
	return false
}

// Scale returns the 1-10 scale answer for field, or fallback when absent.
func (rs *ResponseSet) Scale(field string, fallback int) int {
	if v, ok := rs.scales[field]; ok {
		return v
	}
	return fallback
}

// CandidatePool flattens every answer the pattern matcher scores against:
// all multi-select entries plus every single-value field, with empty values
// discarded. The order is fixed so matching stays deterministic.
func (rs *ResponseSet) CandidatePool() []string {
	pool := make([]string, 0, 32)

	for _, field := range []string{FieldPileUp, FieldTimeWasters, FieldTimeTheft, FieldTrackingMethod} {
		for _, v := range rs.lists[field] {
			if v != "" {
				pool = append(pool, v)
			}
		}
	}

	for _, field := range []string{
		FieldBusFactor,
		FieldLearningMethod,
		FieldRole,
		FieldWorkHours,
		FieldDocState,
		FieldDocUsage,
		FieldAbsenceImpact,
		FieldTeamUtilization,
		FieldDecisionBacklog,
		FieldMentalEnergy,
		FieldRevenueDepend,
		FieldDelegationFear,
		FieldCapacityUtil,
		FieldGrowthBlocker,
	} {
		if v := rs.strings[field]; v != "" {
			pool = append(pool, v)
		}
	}

	return pool
}

// SelectedWasters combines the two time-loss multi-selects that feed the
// Track A calculation.
func (rs *ResponseSet) SelectedWasters() []string {
	wasters := make([]string, 0, len(rs.lists[FieldTimeWasters])+len(rs.lists[FieldTimeTheft]))
	wasters = append(wasters, rs.lists[FieldTimeWasters]...)
	wasters = append(wasters, rs.lists[FieldTimeTheft]...)
	return wasters
}
