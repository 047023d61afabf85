// Package match scores identifier similarity. The resolver uses it to
// suggest the closest declared member when a configured data source
// name does not resolve.
package match

import "strings"

// closestThreshold is the minimum similarity score for a hint; below
// it a near-miss is more likely noise than a typo.
const closestThreshold = 0.5

// Distance computes the Levenshtein edit distance between two strings:
// the minimum number of single-character insertions, deletions and
// substitutions transforming one into the other.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a as the shorter string; two rows suffice.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Score computes a normalized similarity between two identifiers in
// [0, 1], with 1 meaning identical after normalization. Case and the
// separators "_" and "-" are ignored so that near-misses like
// "task_options" vs "TaskOptions" score as equal.
func Score(a, b string) float64 {
	normA := normalize(a)
	normB := normalize(b)

	if len(normA) == 0 && len(normB) == 0 {
		return 1.0
	}

	maxLen := max(len(normA), len(normB))

	return 1.0 - float64(Distance(normA, normB))/float64(maxLen)
}

// Closest returns the candidate most similar to name, provided its
// score clears the hint threshold. Ties keep the earliest candidate.
func Closest(name string, candidates []string) (string, bool) {
	best := ""
	bestScore := 0.0

	for _, candidate := range candidates {
		if score := Score(name, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore < closestThreshold {
		return "", false
	}

	return best, true
}

func normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r != '_' && r != '-' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
