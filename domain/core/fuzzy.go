package core

import "strings"

// FuzzyContains reports whether needle and haystack match under bidirectional
// substring containment: either string appearing inside the other counts as a
// match. Comparison is case-sensitive; both the pattern matcher and the
// time-waste mapper rely on the same semantics, so keep the rule here.
func FuzzyContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ContainsFold reports whether s contains substr, ignoring ASCII case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
