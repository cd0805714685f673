// Package suggest finds near matches for mistyped names.
package suggest

import (
	"sort"
	"strings"
)

const (
	// DefaultMaxDistance is the largest edit distance still offered as a suggestion
	DefaultMaxDistance = 2
	// DefaultMaxSuggestions caps the number of suggestions returned
	DefaultMaxSuggestions = 3
)

type candidate struct {
	value    string
	distance int
}

// Similar returns up to DefaultMaxSuggestions candidates within
// DefaultMaxDistance edits of target, closest first. Comparison ignores case,
// and candidates that differ only in case from one another are reported once.
//
//	Similar("atack", []string{"AttackPoints", "atk", "Name"}) // ["atk"]
func Similar(target string, candidates []string) []string {
	target = strings.ToLower(target)

	var found []candidate
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true

		if dist := Distance(target, key); dist <= DefaultMaxDistance {
			found = append(found, candidate{value: c, distance: dist})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].distance < found[j].distance
	})

	out := make([]string, 0, DefaultMaxSuggestions)
	for i := 0; i < len(found) && i < DefaultMaxSuggestions; i++ {
		out = append(out, found[i].value)
	}
	return out
}

// Distance is the Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	s1, s2 := []rune(a), []rune(b)
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
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

	return prev[len(s2)]
}
