// Package fuzzy finds the registered option name closest to a mistyped one.
// Used by argr to attach "did you mean" suggestions to strict-mode errors.
package fuzzy

import (
	"sort"
	"strings"
)

// Match is one candidate within the allowed edit distance.
type Match struct {
	Value    string
	Distance int
}

// Matches returns candidates within maxDistance of input, closest first.
// Ties keep a longer shared prefix first, then alphabetical order.
// Exact (case-insensitive) matches are excluded.
func Matches(input string, candidates []string, maxDistance int) []Match {
	if input == "" || maxDistance <= 0 {
		return nil
	}

	input = strings.ToLower(input)
	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		if d := Distance(input, lower, maxDistance); d <= maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		pi := prefixLen(input, strings.ToLower(matches[i].Value))
		pj := prefixLen(input, strings.ToLower(matches[j].Value))
		if pi != pj {
			return pi > pj
		}
		return matches[i].Value < matches[j].Value
	})
	return matches
}

// Closest returns the best match, or "" if nothing is within maxDistance.
func Closest(input string, candidates []string, maxDistance int) string {
	matches := Matches(input, candidates, maxDistance)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Distance is the Levenshtein distance between a and b. Once it is known to
// exceed limit the function stops early and returns limit+1.
func Distance(a, b string, limit int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > limit {
		return limit + 1
	}
	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > limit {
			return limit + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func prefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
