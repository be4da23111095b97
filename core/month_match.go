package core

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/slidecal/calendar"
)

// MatchMonth finds the month a typed query names. A prefix of a month
// name wins outright; otherwise the closest name by edit distance is
// taken when it is within half the query length.
func MatchMonth(loc calendar.Locale, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, false
	}
	// "ju" matches June and July; the first wins so further typing narrows it.
	for m := 1; m <= 12; m++ {
		if strings.HasPrefix(strings.ToLower(loc.MonthName(m)), q) {
			return m, true
		}
	}

	best, bestDist := 0, -1
	for m := 1; m <= 12; m++ {
		name := strings.ToLower(loc.MonthName(m))
		if n := utf8.RuneCountInString(q); utf8.RuneCountInString(name) > n {
			name = string([]rune(name)[:n])
		}
		d := levenshtein.ComputeDistance(q, name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = m, d
		}
	}
	if bestDist <= utf8.RuneCountInString(q)/2 {
		return best, true
	}
	return 0, false
}
