// Package fuzzy ranks declared identities against a mistyped token so the
// error reporter can say "did you mean". It is only ever invoked on the
// error path.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher scores candidates against an input within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher. Inputs shorter than two characters are never
// matched; a one-character typo has no meaningful nearest neighbor.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance, minLength: 2}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// Best returns the highest-ranked candidate, or "" when nothing is within
// the distance bound.
func (m *Matcher) Best(input string, candidates []string) string {
	matches := m.Rank(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Rank returns all candidates within the distance bound, best first.
func (m *Matcher) Rank(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	input = strings.ToLower(input)

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if input == lower {
			continue // exact matches are not typos
		}
		distance := m.distance(input, lower)
		if distance <= m.maxDistance {
			matches = append(matches, Match{
				Value:    candidate,
				Distance: distance,
				Score:    m.score(input, lower, distance),
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// score blends edit distance with prefix and length affinity so that, e.g.,
// "verbos" prefers "verbose" over an equally distant but unrelated name.
func (m *Matcher) score(input, candidate string, distance int) float64 {
	longest := max(len(input), len(candidate))
	if longest == 0 {
		return 1.0
	}

	editScore := 1.0 - float64(distance)/float64(longest)

	prefixBonus := 0.0
	if p := commonPrefix(input, candidate); p > 0 {
		prefixBonus = float64(p) / float64(min(len(input), len(candidate))) * 0.3
	}

	lengthDiff := abs(len(input) - len(candidate))
	lengthBonus := (1.0 - float64(lengthDiff)/float64(longest)) * 0.2

	score := editScore + prefixBonus + lengthBonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// distance is Levenshtein with two-row storage and early exit once every
// cell in a row exceeds the bound.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}

	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func min3(a, b, c int) int {
	return min(min(a, b), c)
}

// Closest is the one-shot form used by error construction.
func Closest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, candidates)
}

// Suggestions returns up to limit ranked candidates for richer diagnostics.
func Suggestions(input string, candidates []string, maxDistance, limit int) []string {
	matches := NewMatcher(maxDistance).Rank(input, candidates)
	out := make([]string, 0, min(len(matches), limit))
	for i, match := range matches {
		if i >= limit {
			break
		}
		out = append(out, match.Value)
	}
	return out
}
