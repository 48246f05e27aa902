// Package diagnosis composes the engine output consumed by the presentation
// layer: routed track, ranked bottlenecks, cost estimate, and the static
// validation content for the primary pattern.
package diagnosis

import (
	"opsdiag/domain/cost"
	"opsdiag/domain/intake"
	"opsdiag/domain/pattern"
	"opsdiag/domain/track"
)

// Diagnosis is the terminal aggregate of one diagnostic run. It is a pure
// function of the response set: no clock, no randomness, no I/O.
type Diagnosis struct {
	Track     track.Track         `json:"track"`
	Match     pattern.MatchResult `json:"bottleneck"`
	Cost      cost.Estimate       `json:"cost"`
	Questions []string            `json:"validation_questions"`
	Why       string              `json:"why_explanation"`

	// Primary pattern content the presentation layer renders directly.
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`

	Responses *intake.ResponseSet `json:"-"`
}

// Assembler runs the full pipeline against a fixed catalog.
type Assembler struct {
	catalog *pattern.Catalog
}

// NewAssembler creates an assembler over the given catalog. A nil catalog
// uses the built-in one.
func NewAssembler(catalog *pattern.Catalog) *Assembler {
	if catalog == nil {
		catalog = pattern.Default()
	}
	return &Assembler{catalog: catalog}
}

// Assemble produces the complete Diagnosis for one response set. It always
// succeeds: sparse input falls through to documented defaults and the
// catalog's generic fallback content.
func (a *Assembler) Assemble(rs *intake.ResponseSet) Diagnosis {
	t := track.Route(rs.Str(intake.FieldBusinessType))
	match := pattern.Match(rs, a.catalog)
	rate := cost.ParseHourlyRate(rs.Str(intake.FieldHourlyRate))
	estimate := cost.Calculate(rs, t, rate)

	d := Diagnosis{
		Track:     t,
		Match:     match,
		Cost:      estimate,
		Questions: a.catalog.Questions(match.Primary.Key),
		Why:       a.catalog.Why(match.Primary.Key),
		Responses: rs,
	}
	if p, ok := a.catalog.Get(match.Primary.Key); ok {
		d.Description = p.Description
		d.Symptoms = p.Symptoms
	}
	return d
}
