// Package store holds the authoritative set of course records, keyed by course
// code and written through to a single durable key-value slot on every change.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/byxorna/coursebook/pkg/db"
	v1 "github.com/byxorna/coursebook/pkg/types/v1"
	"go.uber.org/zap"
)

// StorageKey is the durable slot all courses are persisted under.
const StorageKey = "courses"

type Store struct {
	*sync.Mutex

	kv     db.KV
	log    *zap.Logger
	status v1.SyncStatus
	saved  time.Time

	// order keeps insertion order for listing; courses is authoritative
	order   []string
	courses map[string]v1.Course
}

// New hydrates a Store from kv. A malformed persisted value fails with a
// KindParse error rather than starting empty.
func New(kv db.KV, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := Store{
		Mutex:   &sync.Mutex{},
		kv:      kv,
		log:     logger,
		status:  v1.StatusUninitialized,
		courses: map[string]v1.Course{},
	}

	if err := s.hydrate(); err != nil {
		s.status = v1.StatusError
		return nil, err
	}

	s.status = v1.StatusOK
	s.log.Debug("hydrated course store", zap.Int("courses", len(s.order)), zap.String("location", kv.Location()))
	return &s, nil
}

func (x *Store) hydrate() error {
	raw, ok, err := x.kv.Read(StorageKey)
	if err != nil {
		return &Error{Kind: KindStorageRead, Err: err}
	}
	if !ok {
		return nil
	}

	var stored []v1.Course
	if err := json.Unmarshal(raw, &stored); err != nil {
		return &Error{Kind: KindParse, Err: fmt.Errorf("unable to deserialize %s: %w", StorageKey, err)}
	}
	// null decodes without error; [] does not leave the slice nil
	if stored == nil {
		return &Error{Kind: KindParse, Err: fmt.Errorf("%s is not a list of courses", StorageKey)}
	}

	for i, c := range stored {
		if err := c.Check(); err != nil {
			return &Error{Kind: KindParse, Code: c.Code, Err: fmt.Errorf("course at index %d: %w", i, err)}
		}
		x.set(c)
	}
	return nil
}

// set inserts or overwrites without persisting. An overwritten code keeps its
// position in the listing.
func (x *Store) set(c v1.Course) {
	if _, ok := x.courses[c.Code]; !ok {
		x.order = append(x.order, c.Code)
	}
	x.courses[c.Code] = c
}

// Upsert inserts c, or overwrites the course with the same code, and persists
// the full mapping. Only the rules hydration enforces are checked here, so any
// course the store loaded can be saved again.
func (x *Store) Upsert(c v1.Course) error {
	if err := c.Check(); err != nil {
		return &Error{Kind: KindInvalid, Code: c.Code, Err: err}
	}

	x.Lock()
	defer x.Unlock()

	x.set(c)
	if err := x.persist(); err != nil {
		x.log.Error("unable to persist upsert", zap.String("code", c.Code), zap.Error(err))
		return &Error{Kind: KindStorageWrite, Code: c.Code, Err: err}
	}
	x.log.Info("upserted course", zap.String("code", c.Code))
	return nil
}

// Get returns the course for code. The bool is false when no such course
// exists.
func (x *Store) Get(code string) (v1.Course, bool) {
	x.Lock()
	defer x.Unlock()

	c, ok := x.courses[code]
	return c, ok
}

// List returns every course in insertion order.
func (x *Store) List() []v1.Course {
	x.Lock()
	defer x.Unlock()
	return x.list()
}

func (x *Store) list() []v1.Course {
	out := make([]v1.Course, 0, len(x.order))
	for _, code := range x.order {
		out = append(out, x.courses[code])
	}
	return out
}

// Delete removes the course for code if there is one. Deleting a missing code
// is not an error. The mapping is persisted either way.
func (x *Store) Delete(code string) error {
	x.Lock()
	defer x.Unlock()

	if _, ok := x.courses[code]; ok {
		delete(x.courses, code)
		for i, c := range x.order {
			if c == code {
				x.order = append(x.order[:i], x.order[i+1:]...)
				break
			}
		}
	}

	if err := x.persist(); err != nil {
		x.log.Error("unable to persist delete", zap.String("code", code), zap.Error(err))
		return &Error{Kind: KindStorageWrite, Code: code, Err: err}
	}
	x.log.Info("deleted course", zap.String("code", code))
	return nil
}

func (x *Store) persist() error {
	x.status = v1.StatusSynchronizing

	b, err := json.Marshal(x.list())
	if err != nil {
		x.status = v1.StatusError
		return fmt.Errorf("unable to serialize %s: %w", StorageKey, err)
	}

	if err := x.kv.Write(StorageKey, b); err != nil {
		x.status = v1.StatusError
		return err
	}

	x.saved = time.Now()
	x.status = v1.StatusOK
	return nil
}

func (x *Store) Len() int {
	x.Lock()
	defer x.Unlock()
	return len(x.order)
}

func (x *Store) Status() v1.SyncStatus {
	x.Lock()
	defer x.Unlock()
	return x.status
}

// LastSaved is the time of the last successful persist, zero if none.
func (x *Store) LastSaved() time.Time {
	x.Lock()
	defer x.Unlock()
	return x.saved
}

func (x *Store) Location() string { return x.kv.Location() }
