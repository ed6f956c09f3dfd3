package picker

import "strings"

// Match reports whether pattern matches candidate as a case-insensitive
// subsequence, with a score for ranking. Higher is better: consecutive hits
// and hits on word starts score above scattered ones. An empty pattern
// matches everything with a zero score.
func Match(pattern, candidate string) (bool, int) {
	if pattern == "" {
		return true, 0
	}

	p := strings.ToLower(pattern)
	c := strings.ToLower(candidate)

	score := 0
	pi := 0
	lastHit := -2
	for ci := 0; ci < len(c) && pi < len(p); ci++ {
		if c[ci] != p[pi] {
			continue
		}
		score++
		if ci == lastHit+1 {
			score += 2
		}
		if ci == 0 || isWordBoundary(c[ci-1]) {
			score += 3
		}
		lastHit = ci
		pi++
	}
	if pi < len(p) {
		return false, 0
	}

	// Shorter candidates rank above longer ones on equal hits.
	score -= len(c) / 8
	return true, score
}

func isWordBoundary(b byte) bool {
	switch b {
	case '.', '-', '_', ' ', '/':
		return true
	}
	return false
}
