package pattern

import (
	"opsdiag/domain/core"
	"opsdiag/domain/intake"
)

// Trigger scoring weights. The bus factor answer is re-scored on its own
// because founder-absence impact is the strongest single signal we collect.
const (
	triggerWeight   = 2
	busFactorWeight = 3
)

// Score is the per-pattern match outcome.
type Score struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Matched []string `json:"matched_triggers,omitempty"`
}

// MatchResult carries the ranked primary/secondary designations. Secondary
// is nil unless its score is strictly positive.
type MatchResult struct {
	Primary   Score  `json:"primary"`
	Secondary *Score `json:"secondary,omitempty"`
}

// HasSecondary reports whether a secondary constraint was detected.
func (m MatchResult) HasSecondary() bool {
	return m.Secondary != nil
}

// Match scores every catalog pattern against the response set and returns the
// ranked primary and secondary bottlenecks. Matching is pure and
// deterministic; ties break by catalog order. A primary is always returned,
// even at score zero, so the engine never produces an "unknown" diagnosis.
func Match(rs *intake.ResponseSet, catalog *Catalog) MatchResult {
	pool := rs.CandidatePool()
	busFactor := rs.Str(intake.FieldBusFactor)

	scores := make([]Score, 0, catalog.Len())
	for _, key := range catalog.Keys() {
		p, _ := catalog.Get(key)
		s := Score{Key: p.Key, Name: p.Name}

		for _, trigger := range p.Triggers {
			// Presence, not multiplicity: a trigger counts once however
			// many responses it matches.
			for _, resp := range pool {
				if core.FuzzyContains(trigger, resp) {
					s.Score += triggerWeight
					s.Matched = append(s.Matched, trigger)
					break
				}
			}
		}

		if busFactor != "" {
			for _, trigger := range p.Triggers {
				if core.FuzzyContains(trigger, busFactor) {
					s.Score += busFactorWeight
				}
			}
		}

		scores = append(scores, s)
	}

	if len(scores) == 0 {
		return MatchResult{}
	}

	primaryIdx := 0
	for i, s := range scores {
		if s.Score > scores[primaryIdx].Score {
			primaryIdx = i
		}
	}

	result := MatchResult{Primary: scores[primaryIdx]}

	secondaryIdx := -1
	for i, s := range scores {
		if i == primaryIdx {
			continue
		}
		if secondaryIdx == -1 || s.Score > scores[secondaryIdx].Score {
			secondaryIdx = i
		}
	}
	if secondaryIdx >= 0 && scores[secondaryIdx].Score > 0 {
		secondary := scores[secondaryIdx]
		result.Secondary = &secondary
	}

	return result
}
