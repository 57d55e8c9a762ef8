package textutil

import (
	"cmp"
	"slices"
)

// CosineSimilarity returns the cosine of the angle between two fingerprints,
// or 0 when either is nil.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Match is a candidate title and its similarity to the target.
type Match struct {
	Title string
	Score float64
}

// ClosestMatches ranks candidates by similarity to target and returns at most
// limit of them scoring at least threshold, best first. Duplicate candidate
// titles are reported once. Ties keep candidate order.
func ClosestMatches(target string, candidates []string, threshold float64, limit int) []Match {
	if limit <= 0 {
		return nil
	}
	want := NewFingerprint(target)
	if want == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(candidates))
	var matches []Match
	for _, title := range candidates {
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		score := CosineSimilarity(want, NewFingerprint(title))
		if score < threshold || score == 0 {
			continue
		}
		matches = append(matches, Match{Title: title, Score: score})
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
