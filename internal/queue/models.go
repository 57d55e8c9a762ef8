package queue

import (
	"strconv"
	"strings"
)

const (
	// MinEpisodes is the smallest episode count Add accepts.
	MinEpisodes = 1
	// MinRating and MaxRating bound the ratings Add accepts, inclusive.
	MinRating = 1.0
	MaxRating = 5.0
)

// Show is one record in the queue.
type Show struct {
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Episodes int     `json:"episodes"`
	Rating   float64 `json:"rating"`
}

// Validate reports whether the show satisfies the ranges enforced on add.
func (s Show) Validate() error {
	if s.Episodes < MinEpisodes {
		return newValidationError("episodes", "episodes must be a positive integer")
	}
	// Written as a negated range so NaN is rejected too.
	if !(s.Rating >= MinRating && s.Rating <= MaxRating) {
		return newValidationError("rating", "rating out of range")
	}
	return nil
}

// ParseShow builds a show from raw text input, the way a prompt or command
// line supplies it. The result is not range checked; Add does that.
func ParseShow(title, genre, episodesText, ratingText string) (Show, error) {
	episodes, err := strconv.Atoi(strings.TrimSpace(episodesText))
	if err != nil {
		return Show{}, newValidationError("episodes", "episodes must be a positive integer")
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(ratingText), 64)
	if err != nil {
		return Show{}, newValidationError("rating", "rating must be a number between 1.0 and 5.0")
	}
	return Show{
		Title:    title,
		Genre:    genre,
		Episodes: episodes,
		Rating:   rating,
	}, nil
}

// FormatRating renders a rating with the fewest digits that read back to the
// same value.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// Entry pairs a show with its 1-based position in the queue.
type Entry struct {
	Index int  `json:"index"`
	Show  Show `json:"show"`
}
