package record

import "strings"

// Filter returns the records whose kind, verdict, or snippet contains
// term, case-insensitively. An empty term matches everything. The input
// slice is never modified and relative order is preserved.
func Filter(history []Record, term string) []Record {
	if term == "" {
		return history
	}

	lowered := strings.ToLower(term)
	out := make([]Record, 0, len(history))
	for _, r := range history {
		if matches(r, lowered) {
			out = append(out, r)
		}
	}
	return out
}

// matches reports whether a lowered term hits any searchable field.
// A record without a snippet can never match on the snippet field.
func matches(r Record, lowered string) bool {
	if strings.Contains(strings.ToLower(string(r.Kind)), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Verdict), lowered) {
		return true
	}
	return r.Snippet != "" && strings.Contains(strings.ToLower(r.Snippet), lowered)
}
