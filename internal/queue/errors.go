package queue

import (
	"errors"
	"fmt"
)

// ErrorClassifier allows errors to declare their classification so callers can
// report failures without matching on concrete types.
type ErrorClassifier interface {
	// ErrorKind returns a string classification of the error.
	// Known kinds: "validation", "not_found", "io".
	ErrorKind() string
}

const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindIO         = "io"
	KindUnknown    = "unknown"
)

// Kind returns the classification of err, or KindUnknown when nothing in the
// chain implements ErrorClassifier.
func Kind(err error) string {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	return KindUnknown
}

// ValidationError reports input that Add or SortBy refused.
type ValidationError struct {
	Field   string
	Message string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// ErrorKind implements ErrorClassifier.
func (e *ValidationError) ErrorKind() string { return KindValidation }

// NotFoundError reports a Remove target that is not in the queue.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("show %q not found in queue", e.Title)
}

// ErrorKind implements ErrorClassifier.
func (e *NotFoundError) ErrorKind() string { return KindNotFound }
