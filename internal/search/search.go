// Package search matches compare-view search input against roster names.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
)

// SuggestThreshold is the minimum normalized Levenshtein similarity for Closest.
const SuggestThreshold = 0.7

// MatchByName returns roster players whose name contains query, ignoring case.
// An empty or blank query matches nothing.
func MatchByName(roster []players.Profile, query string) []players.Profile {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []players.Profile{}
	if q == "" {
		return out
	}
	for _, p := range roster {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Closest returns the roster player whose name is most similar to query, for a
// "did you mean" hint when MatchByName finds nothing.
func Closest(roster []players.Profile, query string) (players.Profile, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return players.Profile{}, false
	}

	var best players.Profile
	bestScore := -1.0
	for _, p := range roster {
		score := similarity(q, strings.ToLower(p.Name))
		if score >= SuggestThreshold && score > bestScore {
			best, bestScore = p, score
		}
	}
	return best, bestScore >= 0
}

// similarity is 1 minus the Levenshtein distance over the longer rune count.
func similarity(a, b string) float64 {
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if n == 0 {
		return 0
	}
	return float64(n-fuzzy.LevenshteinDistance(a, b)) / float64(n)
}
