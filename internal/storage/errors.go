package storage

import (
	"fmt"

	"streamsort/internal/queue"
)

// IOError reports a storage location that could not be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ErrorKind implements queue.ErrorClassifier.
func (e *IOError) ErrorKind() string { return queue.KindIO }
