package queue

import (
	"strings"

	"golang.org/x/text/cases"
)

// SortKey selects the ordering applied by SortBy.
type SortKey string

const (
	SortByTitle  SortKey = "title"
	SortByRating SortKey = "rating"
)

// ParseSortKey maps user input onto a SortKey. Names are matched without
// regard to case, and the menu numbers 1 and 2 select title and rating.
func ParseSortKey(value string) (SortKey, error) {
	switch cases.Fold().String(strings.TrimSpace(value)) {
	case "title", "1":
		return SortByTitle, nil
	case "rating", "2":
		return SortByRating, nil
	default:
		return "", errInvalidSortOption()
	}
}

func errInvalidSortOption() *ValidationError {
	return newValidationError("sort", "invalid sort option")
}
