package form

import (
	"errors"
	"testing"

	"github.com/byxorna/coursebook/pkg/db/memory"
	"github.com/byxorna/coursebook/pkg/store"
	v1 "github.com/byxorna/coursebook/pkg/types/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cs101 = v1.Course{Code: "CS101", Name: "Intro", Progression: v1.ProgressionA, Syllabus: "http://x"}
	cs102 = v1.Course{Code: "CS102", Name: "Data Structures", Progression: v1.ProgressionB, Syllabus: "https://example.edu/cs102"}

	errUpsert = errors.New("quota exceeded")
)

// flakyRecords fails Upsert on demand while delegating everything else.
type flakyRecords struct {
	Records
	failUpsert bool
}

func (f *flakyRecords) Upsert(c v1.Course) error {
	if f.failUpsert {
		return errUpsert
	}
	return f.Records.Upsert(c)
}

func newController(t *testing.T, seed ...v1.Course) (*Controller, *store.Store) {
	t.Helper()
	s, err := store.New(memory.New(), nil)
	require.NoError(t, err)
	for _, c := range seed {
		require.NoError(t, s.Upsert(c))
	}
	return New(s, nil), s
}

func TestInitialState(t *testing.T) {
	c, _ := newController(t)

	assert.Equal(t, State{}, c.State())
	assert.Equal(t, Fields{Progression: v1.ProgressionA}, c.Fields())
}

func TestSubmitCreates(t *testing.T) {
	c, s := newController(t)

	c.SetFields(FieldsFrom(cs101))
	n, err := c.Submit()
	require.NoError(t, err)

	assert.Equal(t, Success, n.Kind)
	assert.Equal(t, []v1.Course{cs101}, s.List())
	assert.Equal(t, []v1.Course{cs101}, c.Courses())
	assert.Equal(t, State{}, c.State(), "stays in Creating")
	assert.Equal(t, Fields{Progression: v1.ProgressionA}, c.Fields(), "form is cleared")
}

func TestSubmitTrimsInput(t *testing.T) {
	c, s := newController(t)

	c.SetFields(Fields{Code: " CS101 ", Name: "Intro ", Progression: v1.ProgressionA, Syllabus: " http://x"})
	_, err := c.Submit()
	require.NoError(t, err)

	got, ok := s.Get("CS101")
	require.True(t, ok)
	assert.Equal(t, cs101, got)
}

func TestSubmitSameCodeTwice(t *testing.T) {
	c, s := newController(t)

	c.SetFields(FieldsFrom(cs101))
	_, err := c.Submit()
	require.NoError(t, err)

	second := cs101
	second.Name = "Intro, revised"
	c.SetFields(FieldsFrom(second))
	_, err = c.Submit()
	require.NoError(t, err)

	require.Len(t, s.List(), 1)
	assert.Equal(t, "Intro, revised", s.List()[0].Name)
}

func TestStartEdit(t *testing.T) {
	c, _ := newController(t, cs101, cs102)

	require.True(t, c.StartEdit("CS101"))
	assert.Equal(t, State{Editing: true, Code: "CS101"}, c.State())
	assert.Equal(t, FieldsFrom(cs101), c.Fields())
}

func TestStartEditMissing(t *testing.T) {
	c, _ := newController(t, cs101)

	typed := Fields{Code: "typing", Progression: v1.ProgressionC}
	c.SetFields(typed)

	assert.False(t, c.StartEdit("nope"))
	assert.Equal(t, State{}, c.State())
	assert.Equal(t, typed, c.Fields(), "form is untouched")
}

func TestStartEditWhileEditingDiscardsInput(t *testing.T) {
	c, s := newController(t, cs101, cs102)

	require.True(t, c.StartEdit("CS101"))
	f := c.Fields()
	f.Name = "unsaved"
	c.SetFields(f)

	require.True(t, c.StartEdit("CS102"))
	assert.Equal(t, State{Editing: true, Code: "CS102"}, c.State())
	assert.Equal(t, FieldsFrom(cs102), c.Fields())

	got, _ := s.Get("CS101")
	assert.Equal(t, "Intro", got.Name, "no implicit save")
}

func TestEditSubmitSameCode(t *testing.T) {
	c, s := newController(t, cs101, cs102)

	require.True(t, c.StartEdit("CS101"))
	f := c.Fields()
	f.Progression = v1.ProgressionC
	c.SetFields(f)

	_, err := c.Submit()
	require.NoError(t, err)

	got, ok := s.Get("CS101")
	require.True(t, ok)
	assert.Equal(t, v1.ProgressionC, got.Progression)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, State{}, c.State())
}

func TestEditRename(t *testing.T) {
	c, s := newController(t, cs101)

	require.True(t, c.StartEdit("CS101"))
	f := c.Fields()
	f.Code = "CS102"
	c.SetFields(f)

	n, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Success, n.Kind)

	_, ok := s.Get("CS101")
	assert.False(t, ok)
	got, ok := s.Get("CS102")
	require.True(t, ok)
	assert.Equal(t, "Intro", got.Name)
	assert.Equal(t, State{}, c.State(), "back to Creating")
}

func TestEditRenameUpsertFailureLosesBoth(t *testing.T) {
	s, err := store.New(memory.New(), nil)
	require.NoError(t, err)
	require.NoError(t, s.Upsert(cs101))

	records := &flakyRecords{Records: s}
	c := New(records, nil)

	require.True(t, c.StartEdit("CS101"))
	f := c.Fields()
	f.Code = "CS102"
	c.SetFields(f)

	records.failUpsert = true
	n, err := c.Submit()
	require.ErrorIs(t, err, errUpsert)
	assert.Equal(t, Error, n.Kind)
	assert.Equal(t, errUpsert.Error(), n.Message)

	_, ok := s.Get("CS101")
	assert.False(t, ok, "delete already happened")
	_, ok = s.Get("CS102")
	assert.False(t, ok, "upsert never happened")

	assert.Equal(t, State{Editing: true, Code: "CS101"}, c.State(), "edit state is kept")
	assert.Equal(t, f, c.Fields(), "form is kept")
}

func TestSubmitStorageFailureKeepsForm(t *testing.T) {
	s, err := store.New(memory.NewWithQuota(10), nil)
	require.NoError(t, err)
	c := New(s, nil)

	c.SetFields(FieldsFrom(cs101))
	n, err := c.Submit()
	require.Error(t, err)
	assert.True(t, store.IsKind(err, store.KindStorageWrite))
	assert.Equal(t, Error, n.Kind)
	assert.Contains(t, n.Message, "quota")

	assert.Equal(t, FieldsFrom(cs101), c.Fields())
	assert.Equal(t, State{}, c.State())
}

func TestSubmitInvalidDoesNotTouchStore(t *testing.T) {
	c, s := newController(t, cs101)

	require.True(t, c.StartEdit("CS101"))
	f := c.Fields()
	f.Code = "CS999"
	f.Syllabus = "not a url"
	c.SetFields(f)

	n, err := c.Submit()
	require.Error(t, err)
	assert.Equal(t, Error, n.Kind)
	assert.Contains(t, n.Message, "syllabus must be a valid URL")

	_, ok := s.Get("CS101")
	assert.True(t, ok, "rename is not started for an invalid form")
	assert.Equal(t, State{Editing: true, Code: "CS101"}, c.State())
}

func TestEditLegacyRecordKeepsUnchangedFields(t *testing.T) {
	kv := memory.New()
	require.NoError(t, kv.Write(store.StorageKey,
		[]byte(`[{"code":"CS101","name":"","progression":"A","syllabus":"kursplan.pdf"}]`)))
	s, err := store.New(kv, nil)
	require.NoError(t, err)
	c := New(s, nil)

	require.True(t, c.StartEdit("CS101"))
	f := c.Fields()
	f.Progression = v1.ProgressionC
	c.SetFields(f)

	_, err = c.Submit()
	require.NoError(t, err, "untouched fields of a stored course are not re-validated")
	got, _ := s.Get("CS101")
	assert.Equal(t, v1.ProgressionC, got.Progression)

	// changed fields still get the full rules
	require.True(t, c.StartEdit("CS101"))
	f = c.Fields()
	f.Syllabus = "syllabus.pdf"
	c.SetFields(f)

	n, err := c.Submit()
	require.Error(t, err)
	assert.Equal(t, "syllabus must be a valid URL", n.Message)
}

func TestReset(t *testing.T) {
	c, _ := newController(t, cs101)

	require.True(t, c.StartEdit("CS101"))
	c.Reset()

	assert.Equal(t, State{}, c.State())
	assert.Equal(t, Fields{Progression: v1.ProgressionA}, c.Fields())
}

func TestDelete(t *testing.T) {
	c, s := newController(t, cs101, cs102)

	n, err := c.Delete("CS101")
	require.NoError(t, err)
	assert.Equal(t, Success, n.Kind)
	assert.Equal(t, []v1.Course{cs102}, s.List())

	_, err = c.Delete("missing")
	assert.NoError(t, err)
}
