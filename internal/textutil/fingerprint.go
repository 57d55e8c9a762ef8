package textutil

import (
	"math"
	"regexp"
	"strings"
)

var tokenSplitPattern = regexp.MustCompile(`[^a-z0-9]+`)

// minTokenLength drops articles and other short words from fingerprints.
const minTokenLength = 3

// Fingerprint is a term-frequency vector over a title's words.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint returns the fingerprint of text, or nil when text has no
// usable words.
func NewFingerprint(text string) *Fingerprint {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{tokens: counts, norm: math.Sqrt(norm)}
}

// Tokenize lowercases text and splits it into words, skipping short ones.
func Tokenize(text string) []string {
	raw := tokenSplitPattern.Split(strings.ToLower(text), -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if len(token) < minTokenLength {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}
