package queue_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"streamsort/internal/queue"
)

func titles(q *queue.Queue) []string {
	out := make([]string, 0, q.Len())
	for _, show := range q.Shows() {
		out = append(out, show.Title)
	}
	return out
}

func TestAddThenSearchReturnsShowUnchanged(t *testing.T) {
	cases := []queue.Show{
		{Title: "Severance", Genre: "Drama", Episodes: 19, Rating: 4.8},
		{Title: "Bluey", Genre: "Kids", Episodes: 1, Rating: 1.0},
		{Title: "", Genre: "", Episodes: 1000, Rating: 5.0},
		{Title: "Dark | Light", Genre: "Sci-Fi", Episodes: 26, Rating: 3.25},
	}
	for _, want := range cases {
		q := queue.New()
		if err := q.Add(want); err != nil {
			t.Fatalf("Add(%+v) failed: %v", want, err)
		}
		got, ok := q.Search(want.Title)
		if !ok {
			t.Fatalf("Search(%q) found nothing", want.Title)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Search(%q) mismatch (-want +got):\n%s", want.Title, diff)
		}
	}
}

func TestAddRejectsOutOfRangeInput(t *testing.T) {
	cases := []struct {
		name    string
		show    queue.Show
		field   string
		message string
	}{
		{"zero episodes", queue.Show{Title: "A", Episodes: 0, Rating: 3}, "episodes", "episodes must be a positive integer"},
		{"negative episodes", queue.Show{Title: "A", Episodes: -4, Rating: 3}, "episodes", "episodes must be a positive integer"},
		{"rating below range", queue.Show{Title: "A", Episodes: 1, Rating: 0.5}, "rating", "rating out of range"},
		{"rating above range", queue.Show{Title: "A", Episodes: 1, Rating: 5.1}, "rating", "rating out of range"},
		{"rating NaN", queue.Show{Title: "A", Episodes: 1, Rating: math.NaN()}, "rating", "rating out of range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := queue.New(queue.Show{Title: "Existing", Episodes: 3, Rating: 4})
			err := q.Add(tc.show)
			var verr *queue.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field || verr.Error() != tc.message {
				t.Fatalf("unexpected error: field=%q message=%q", verr.Field, verr.Error())
			}
			if queue.Kind(err) != queue.KindValidation {
				t.Fatalf("Kind = %q, want %q", queue.Kind(err), queue.KindValidation)
			}
			if q.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", q.Len())
			}
		})
	}
}

func TestAddAppendsWithoutDedup(t *testing.T) {
	q := queue.New()
	for _, title := range []string{"One", "Two", "One"} {
		if err := q.Add(queue.Show{Title: title, Episodes: 1, Rating: 2}); err != nil {
			t.Fatalf("Add(%q): %v", title, err)
		}
	}
	if diff := cmp.Diff([]string{"One", "Two", "One"}, titles(q)); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveMissingTitleLeavesQueueUnchanged(t *testing.T) {
	q := queue.New(
		queue.Show{Title: "Alpha", Episodes: 1, Rating: 2},
		queue.Show{Title: "x", Episodes: 1, Rating: 2},
	)
	before := q.Shows()

	err := q.Remove("X")
	var nf *queue.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Title != "X" {
		t.Fatalf("NotFoundError.Title = %q, want X", nf.Title)
	}
	if queue.Kind(err) != queue.KindNotFound {
		t.Fatalf("Kind = %q, want %q", queue.Kind(err), queue.KindNotFound)
	}
	if diff := cmp.Diff(before, q.Shows()); diff != "" {
		t.Fatalf("queue changed (-want +got):\n%s", diff)
	}
}

func TestRemoveDeletesFirstMatchOnly(t *testing.T) {
	q := queue.New(
		queue.Show{Title: "Dup", Genre: "first", Episodes: 1, Rating: 2},
		queue.Show{Title: "Other", Episodes: 1, Rating: 2},
		queue.Show{Title: "Dup", Genre: "second", Episodes: 1, Rating: 2},
	)
	if err := q.Remove("Dup"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	got, ok := q.Search("Dup")
	if !ok || got.Genre != "second" {
		t.Fatalf("expected remaining Dup to be the second entry, got %+v (found=%v)", got, ok)
	}
}

func TestSearchIsExactAndCaseSensitive(t *testing.T) {
	q := queue.New(queue.Show{Title: "The Office", Episodes: 201, Rating: 4.5})
	for _, title := range []string{"the office", "The Office ", "Office"} {
		if _, ok := q.Search(title); ok {
			t.Fatalf("Search(%q) should not match", title)
		}
	}
	if _, ok := q.Search("The Office"); !ok {
		t.Fatal("Search for exact title should match")
	}
}

func TestListVisitsEveryShowInOrder(t *testing.T) {
	q := queue.New(
		queue.Show{Title: "C", Episodes: 1, Rating: 1},
		queue.Show{Title: "A", Episodes: 2, Rating: 2},
		queue.Show{Title: "B", Episodes: 3, Rating: 3},
	)
	want := []queue.Entry{
		{Index: 1, Show: queue.Show{Title: "C", Episodes: 1, Rating: 1}},
		{Index: 2, Show: queue.Show{Title: "A", Episodes: 2, Rating: 2}},
		{Index: 3, Show: queue.Show{Title: "B", Episodes: 3, Rating: 3}},
	}
	if diff := cmp.Diff(want, q.List()); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
	if got := queue.New().List(); len(got) != 0 {
		t.Fatalf("empty queue List() = %v, want empty", got)
	}
}

func TestListHandlesLargeQueues(t *testing.T) {
	const n = 200000
	shows := make([]queue.Show, n)
	for i := range shows {
		shows[i] = queue.Show{Title: "s", Episodes: i + 1, Rating: 3}
	}
	entries := queue.New(shows...).List()
	if len(entries) != n {
		t.Fatalf("len(List()) = %d, want %d", len(entries), n)
	}
	if entries[n-1].Index != n || entries[n-1].Show.Episodes != n {
		t.Fatalf("unexpected last entry: %+v", entries[n-1])
	}
}

func TestSortByTitle(t *testing.T) {
	q := queue.New(
		queue.Show{Title: "Zeta", Episodes: 1, Rating: 1},
		queue.Show{Title: "Alpha", Episodes: 1, Rating: 1},
		queue.Show{Title: "alpha", Episodes: 1, Rating: 1},
		queue.Show{Title: "Beta", Episodes: 1, Rating: 1},
	)
	if err := q.SortBy(queue.SortByTitle); err != nil {
		t.Fatalf("SortBy(title) failed: %v", err)
	}
	// Byte order puts upper case before lower case.
	if diff := cmp.Diff([]string{"Alpha", "Beta", "Zeta", "alpha"}, titles(q)); diff != "" {
		t.Fatalf("title order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByRatingDescendingAndStable(t *testing.T) {
	q := queue.New(
		queue.Show{Title: "low", Episodes: 1, Rating: 3.0},
		queue.Show{Title: "high", Episodes: 1, Rating: 4.5},
		queue.Show{Title: "tie-first", Episodes: 1, Rating: 2.0},
		queue.Show{Title: "tie-second", Episodes: 1, Rating: 2.0},
	)
	if err := q.SortBy(queue.SortByRating); err != nil {
		t.Fatalf("SortBy(rating) failed: %v", err)
	}
	var ratings []float64
	for _, show := range q.Shows() {
		ratings = append(ratings, show.Rating)
	}
	if diff := cmp.Diff([]float64{4.5, 3.0, 2.0, 2.0}, ratings); diff != "" {
		t.Fatalf("rating order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"high", "low", "tie-first", "tie-second"}, titles(q)); diff != "" {
		t.Fatalf("tie order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByInvalidKeyLeavesQueueUnchanged(t *testing.T) {
	q := queue.New(
		queue.Show{Title: "B", Episodes: 1, Rating: 1},
		queue.Show{Title: "A", Episodes: 1, Rating: 5},
	)
	err := q.SortBy(queue.SortKey("genre"))
	var verr *queue.ValidationError
	if !errors.As(err, &verr) || verr.Error() != "invalid sort option" {
		t.Fatalf("expected invalid sort option, got %v", err)
	}
	if diff := cmp.Diff([]string{"B", "A"}, titles(q)); diff != "" {
		t.Fatalf("queue changed (-want +got):\n%s", diff)
	}
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]queue.SortKey{
		"title":   queue.SortByTitle,
		"TITLE":   queue.SortByTitle,
		" Title ": queue.SortByTitle,
		"1":       queue.SortByTitle,
		"rating":  queue.SortByRating,
		"Rating":  queue.SortByRating,
		"2":       queue.SortByRating,
	}
	for input, want := range cases {
		got, err := queue.ParseSortKey(input)
		if err != nil {
			t.Fatalf("ParseSortKey(%q) failed: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseSortKey(%q) = %q, want %q", input, got, want)
		}
	}
	for _, input := range []string{"", "3", "genre", "episodes"} {
		if _, err := queue.ParseSortKey(input); queue.Kind(err) != queue.KindValidation {
			t.Fatalf("ParseSortKey(%q) expected validation error, got %v", input, err)
		}
	}
}

func TestParseShow(t *testing.T) {
	show, err := queue.ParseShow("Andor", "Sci-Fi", " 12 ", "4.75")
	if err != nil {
		t.Fatalf("ParseShow failed: %v", err)
	}
	want := queue.Show{Title: "Andor", Genre: "Sci-Fi", Episodes: 12, Rating: 4.75}
	if diff := cmp.Diff(want, show); diff != "" {
		t.Fatalf("ParseShow mismatch (-want +got):\n%s", diff)
	}

	if _, err := queue.ParseShow("A", "B", "twelve", "4"); err == nil || err.Error() != "episodes must be a positive integer" {
		t.Fatalf("expected episodes error, got %v", err)
	}
	if _, err := queue.ParseShow("A", "B", "3", "great"); queue.Kind(err) != queue.KindValidation {
		t.Fatalf("expected rating validation error, got %v", err)
	}
}

func TestReplaceSkipsValidation(t *testing.T) {
	q := queue.New()
	q.Replace([]queue.Show{{Title: "Legacy", Episodes: 0, Rating: 9}})
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
	q.Replace(nil)
	if q.Len() != 0 || q.Shows() == nil {
		t.Fatalf("Replace(nil) should leave an empty, non-nil queue")
	}
}

func TestShowsReturnsCopy(t *testing.T) {
	q := queue.New(queue.Show{Title: "Keep", Episodes: 1, Rating: 1})
	shows := q.Shows()
	shows[0].Title = "Mutated"
	if _, ok := q.Search("Keep"); !ok {
		t.Fatal("mutating Shows() result should not affect the queue")
	}
}

func TestFormatRating(t *testing.T) {
	cases := map[float64]string{4.5: "4.5", 3: "3", 1.25: "1.25", 4.123456789: "4.123456789"}
	for in, want := range cases {
		if got := queue.FormatRating(in); got != want {
			t.Fatalf("FormatRating(%v) = %q, want %q", in, got, want)
		}
	}
}
