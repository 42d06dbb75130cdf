package topicgraph

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every lookup failure for a topic ID.
var ErrNotFound = errors.New("topic not found")

// ErrDuplicateTopic is returned when a topic ID is added twice.
var ErrDuplicateTopic = errors.New("duplicate topic")

// NotFoundError carries the ID that was looked up.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("topic not found: %q", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(id string) error {
	return &NotFoundError{ID: id}
}
