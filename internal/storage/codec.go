package storage

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"streamsort/internal/queue"
)

// Delimiter separates the fields of a queue file line.
const Delimiter = "|"

const fieldCount = 4

// FormatLine renders show as title|genre|episodes|rating without a newline.
func FormatLine(show queue.Show) string {
	var b strings.Builder
	b.WriteString(show.Title)
	b.WriteString(Delimiter)
	b.WriteString(show.Genre)
	b.WriteString(Delimiter)
	b.WriteString(strconv.Itoa(show.Episodes))
	b.WriteString(Delimiter)
	b.WriteString(queue.FormatRating(show.Rating))
	return b.String()
}

// ParseLine decodes one queue file line. Missing trailing fields read as
// empty strings and anything after the fourth field is ignored. It reports
// false when episodes or rating do not parse in full, or when the rating is
// not a finite number. Ranges are not checked.
func ParseLine(line string) (queue.Show, bool) {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.SplitN(line, Delimiter, fieldCount+1)
	for len(fields) < fieldCount {
		fields = append(fields, "")
	}

	episodes, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return queue.Show{}, false
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return queue.Show{}, false
	}
	return queue.Show{
		Title:    fields[0],
		Genre:    fields[1],
		Episodes: episodes,
		Rating:   rating,
	}, true
}

// Encode writes one line per show in order.
func Encode(w io.Writer, shows []queue.Show) error {
	bw := bufio.NewWriter(w)
	for _, show := range shows {
		if _, err := bw.WriteString(FormatLine(show)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads lines until EOF, keeping the shows that parse and counting
// the lines that do not. Only read failures are returned as errors.
func Decode(r io.Reader) ([]queue.Show, int, error) {
	br := bufio.NewReader(r)
	shows := []queue.Show{}
	skipped := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if show, ok := ParseLine(strings.TrimSuffix(line, "\n")); ok {
				shows = append(shows, show)
			} else {
				skipped++
			}
		}
		if errors.Is(err, io.EOF) {
			return shows, skipped, nil
		}
		if err != nil {
			return shows, skipped, err
		}
	}
}
