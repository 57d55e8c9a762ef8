// Package textutil compares titles by their word content.
//
// Titles are tokenized into lowercase alphanumeric words of at least three
// characters and turned into term-frequency fingerprints. Cosine similarity
// between fingerprints ranks near matches for a title that was not found.
package textutil
