package v1

import (
	"fmt"
	"strings"
)

// Progression is the tier a course sits at within a programme.
type Progression string

const (
	ProgressionA Progression = "A"
	ProgressionB Progression = "B"
	ProgressionC Progression = "C"
)

var (
	Progressions = []Progression{ProgressionA, ProgressionB, ProgressionC}

	ErrUnknownProgression = fmt.Errorf("unknown progression")
)

func ParseProgression(s string) (Progression, error) {
	p := Progression(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w %q, expected one of A, B, C", ErrUnknownProgression, s)
	}
	return p, nil
}

func (p Progression) Valid() bool {
	for _, x := range Progressions {
		if p == x {
			return true
		}
	}
	return false
}

func (p Progression) index() int {
	for i, x := range Progressions {
		if p == x {
			return i
		}
	}
	return -1
}

// Next cycles A -> B -> C -> A. An unset or unknown progression starts at A.
func (p Progression) Next() Progression {
	i := p.index()
	return Progressions[(i+1)%len(Progressions)]
}

// Prev cycles C -> B -> A -> C.
func (p Progression) Prev() Progression {
	i := p.index()
	if i <= 0 {
		return Progressions[len(Progressions)-1]
	}
	return Progressions[i-1]
}

func (p Progression) String() string { return string(p) }

type SyncStatus string

const (
	StatusUninitialized SyncStatus = "uninitialized"
	StatusOK            SyncStatus = "ok"
	StatusSynchronizing SyncStatus = "synchronizing"
	StatusError         SyncStatus = "error"
)
