// Package suggest finds command names that resemble a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a name to be suggested.
const threshold = 0.5

type match struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults names from candidates that resemble target, most similar
// first. Ties are broken alphabetically. Comparison ignores case.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	matches := make([]match, 0, len(candidates))
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			matches = append(matches, match{name: name, score: score})
		}
	}
	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(maxResults, len(matches)))
	for _, m := range matches[:min(maxResults, len(matches))] {
		result = append(result, m.name)
	}
	return result
}

// similarity scores how close b is to a, from 0 (nothing in common) to 1 (equal). A candidate that
// starts with the typed name scores 0.9.
func similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if slices.Equal(ra, rb) {
		return 1.0
	}
	if len(ra) <= len(rb) && slices.Equal(ra, rb[:len(ra)]) {
		return 0.9
	}
	longest := max(len(ra), len(rb))
	return 1.0 - float64(distance(ra, rb))/float64(longest)
}

// distance returns the Levenshtein distance between a and b, keeping only two rows of the matrix.
func distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
