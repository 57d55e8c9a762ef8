package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// maxInputLine caps a single menu answer. Longer lines are consumed and
// rejected so the next prompt starts on the following line.
const maxInputLine = 1 << 20

var errLineTooLong = fmt.Errorf("input line is longer than %s", humanize.IBytes(maxInputLine))

// inputError reports that stdin itself failed; no further answers can be read.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return "read input: " + e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

// lineReader reads newline-terminated answers of at most limit bytes.
type lineReader struct {
	r     *bufio.Reader
	limit int
}

func newLineReader(r io.Reader, limit int) *lineReader {
	return &lineReader{r: bufio.NewReader(r), limit: limit}
}

// ReadLine returns the next line without its line ending. It returns io.EOF
// at end of input, errLineTooLong for an oversized line it has skipped, and
// an *inputError when the underlying reader fails.
func (l *lineReader) ReadLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := l.r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > l.limit+1 {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(buf) == 0 && !tooLong {
				return "", io.EOF
			}
			break
		}
		if err != nil {
			return "", &inputError{err: err}
		}
		break
	}
	if tooLong {
		return "", errLineTooLong
	}
	line := strings.TrimSuffix(string(buf), "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
