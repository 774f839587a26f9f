package task

import (
	"strings"

	"campus-task-assistant/pkg/datemath"
)

// MatchAssignees binds each requested name to the first roster member whose
// full name contains it, or whose first name the requested name contains.
// Comparison is case-insensitive. Unmatched names get low confidence and no
// MatchedName. An empty roster yields no matches.
func MatchAssignees(requested, roster []string) []AssigneeMatch {
	matches := make([]AssigneeMatch, 0, len(requested))
	if len(roster) == 0 {
		return matches
	}

	for _, name := range requested {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		m := AssigneeMatch{RequestedName: name, Confidence: datemath.ConfidenceLow}
		if known, ok := findMember(name, roster); ok {
			m.MatchedName = known
			m.Confidence = datemath.ConfidenceHigh
		}
		matches = append(matches, m)
	}
	return matches
}

func findMember(name string, roster []string) (string, bool) {
	want := strings.ToLower(name)
	for _, known := range roster {
		full := strings.ToLower(strings.TrimSpace(known))
		if full == "" {
			continue
		}
		first := strings.Fields(full)[0]
		if strings.Contains(full, want) || strings.Contains(want, first) {
			return known, true
		}
	}
	return "", false
}
