package store

import (
	"errors"
	"fmt"
)

// Kind says which part of a store operation failed.
type Kind int

const (
	KindUnknown Kind = iota
	// KindStorageWrite means persisting the mapping failed. The in-memory
	// mapping has already been changed and is not rolled back.
	KindStorageWrite
	// KindStorageRead means the durable slot could not be read at hydration.
	KindStorageRead
	// KindParse means the persisted value is malformed.
	KindParse
	// KindInvalid means the course was rejected before any mutation.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindStorageWrite:
		return "storage write"
	case KindStorageRead:
		return "storage read"
	case KindParse:
		return "parse"
	case KindInvalid:
		return "invalid course"
	}
	return "unknown"
}

// Error carries the Kind of a failure along with its cause.
type Error struct {
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s error for %s: %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or KindUnknown if err did not come from a
// Store.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
