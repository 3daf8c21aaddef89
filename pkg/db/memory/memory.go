// Package memory is an in-process KV. It can enforce a byte quota the way a
// browser's local storage does, which makes storage failures easy to provoke.
package memory

import (
	"fmt"
	"sync"

	"github.com/byxorna/coursebook/pkg/db"
)

type Store struct {
	*sync.Mutex

	// Quota is the maximum total number of bytes held across all keys. Zero
	// means unlimited.
	Quota int

	values map[string][]byte
	closed bool
}

func New() *Store {
	return &Store{
		Mutex:  &sync.Mutex{},
		values: map[string][]byte{},
	}
}

func NewWithQuota(quota int) *Store {
	s := New()
	s.Quota = quota
	return s
}

func (x *Store) Read(key string) ([]byte, bool, error) {
	x.Lock()
	defer x.Unlock()

	if x.closed {
		return nil, false, db.ErrClosed
	}

	v, ok := x.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (x *Store) Write(key string, value []byte) error {
	x.Lock()
	defer x.Unlock()

	if x.closed {
		return db.ErrClosed
	}

	if x.Quota > 0 {
		used := len(value)
		for k, v := range x.values {
			if k != key {
				used += len(v)
			}
		}
		if used > x.Quota {
			return fmt.Errorf("writing %d bytes to %s: %w", len(value), key, db.ErrQuotaExceeded)
		}
	}

	v := make([]byte, len(value))
	copy(v, value)
	x.values[key] = v
	return nil
}

func (x *Store) Location() string { return "memory" }

func (x *Store) Close() error {
	x.Lock()
	defer x.Unlock()
	x.closed = true
	return nil
}
