package diag

import "sort"

// DefaultMinSeverity is the reporting threshold when the caller gives none.
const DefaultMinSeverity = SeverityWarning

// DefaultMaxResults is the truncation limit when the caller gives none.
const DefaultMaxResults = 50

// FilterAndRank keeps diagnostics at or above minSeverity, sorts them most
// severe first, and truncates to maxResults. The sort is stable, so
// diagnostics of equal severity keep their original cross-tool order.
func FilterAndRank(diagnostics []Diagnostic, minSeverity Severity, maxResults int) []Diagnostic {
	filtered := make([]Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		if d.Severity >= minSeverity {
			filtered = append(filtered, d)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Severity > filtered[j].Severity
	})

	if maxResults >= 0 && len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}
	return filtered
}
