// Package track routes a business between the two cost models.
package track

import "strings"

// Track selects which cost model applies to a diagnosis.
type Track string

const (
	// TrackA models opportunity cost for decision-heavy, founder-led work.
	TrackA Track = "A"
	// TrackB models operational cost for time-bound, standardized work.
	TrackB Track = "B"
)

// Route classifies a business type answer into a track. Rules are evaluated
// in order, first match wins; unrecognized values (including "mix of both")
// default to Track A. Route is total - it never fails.
func Route(businessType string) Track {
	switch {
	case strings.Contains(businessType, "Time-bound"):
		return TrackB
	case strings.Contains(businessType, "Standardized"):
		return TrackB
	case strings.Contains(businessType, "Decision-heavy"):
		return TrackA
	case strings.Contains(businessType, "founder-led"):
		return TrackA
	default:
		return TrackA
	}
}
