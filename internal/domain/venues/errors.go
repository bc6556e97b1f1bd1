package venues

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound matches every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

var errDuplicateID = errors.New("duplicate venue id")

var (
	ErrVenueNotFound   = &NotFoundError{Kind: "venue"}
	ErrHourNotFound    = &NotFoundError{Kind: "hour"}
	ErrCommentNotFound = &NotFoundError{Kind: "comment"}
)

// NotFoundError reports an identifier that does not resolve. Kind tells a
// missing venue apart from a missing embedded item.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FieldError is a single failed rule on a JSON field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when input is malformed or out of range.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// StorageError wraps a failure of the persistence backend. Its text is for
// logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
