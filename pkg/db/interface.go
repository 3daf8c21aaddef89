package db

import (
	"fmt"
)

var (
	ErrQuotaExceeded = fmt.Errorf("storage quota exceeded")
	ErrClosed        = fmt.Errorf("storage is closed")
)

// KV is a durable key-value slot. Every backend in this module satisfies it.
// Write replaces the whole value stored under key; there are no partial or
// append writes.
type KV interface {
	// Read returns the value stored under key. The bool is false when the key
	// has never been written, which is not an error.
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error

	// Location describes where values end up, for display purposes
	Location() string
	Close() error
}
