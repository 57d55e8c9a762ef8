package queue

import (
	"cmp"
	"slices"
	"strings"
)

// Queue is an ordered sequence of shows.
type Queue struct {
	shows []Show
}

// New returns a queue holding a copy of shows in the given order.
func New(shows ...Show) *Queue {
	q := &Queue{}
	q.Replace(shows)
	return q
}

// Len returns the number of shows in the queue.
func (q *Queue) Len() int {
	return len(q.shows)
}

// Add validates show and appends it to the end of the queue.
func (q *Queue) Add(show Show) error {
	if err := show.Validate(); err != nil {
		return err
	}
	q.shows = append(q.shows, show)
	return nil
}

// Remove deletes the first show whose title equals title exactly.
func (q *Queue) Remove(title string) error {
	idx := q.indexOf(title)
	if idx < 0 {
		return &NotFoundError{Title: title}
	}
	q.shows = slices.Delete(q.shows, idx, idx+1)
	return nil
}

// Search returns the first show whose title equals title exactly.
func (q *Queue) Search(title string) (Show, bool) {
	idx := q.indexOf(title)
	if idx < 0 {
		return Show{}, false
	}
	return q.shows[idx], true
}

func (q *Queue) indexOf(title string) int {
	return slices.IndexFunc(q.shows, func(s Show) bool {
		return s.Title == title
	})
}

// List returns every show in current order with its 1-based position.
func (q *Queue) List() []Entry {
	entries := make([]Entry, 0, len(q.shows))
	for i, show := range q.shows {
		entries = append(entries, Entry{Index: i + 1, Show: show})
	}
	return entries
}

// SortBy reorders the queue. Titles sort ascending byte-wise, ratings sort
// descending. Equal keys keep their relative order.
func (q *Queue) SortBy(key SortKey) error {
	switch key {
	case SortByTitle:
		slices.SortStableFunc(q.shows, func(a, b Show) int {
			return strings.Compare(a.Title, b.Title)
		})
	case SortByRating:
		slices.SortStableFunc(q.shows, func(a, b Show) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	default:
		return errInvalidSortOption()
	}
	return nil
}

// Replace swaps the whole queue for a copy of shows without validating them.
func (q *Queue) Replace(shows []Show) {
	q.shows = slices.Clone(shows)
	if q.shows == nil {
		q.shows = []Show{}
	}
}

// Shows returns a copy of the queue contents in current order.
func (q *Queue) Shows() []Show {
	return slices.Clone(q.shows)
}
