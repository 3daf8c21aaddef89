package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "coursebook.db")

	s, err := New(dbPath)
	require.NoError(t, err)

	_, ok, err := s.Read("courses")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write("courses", []byte(`[{"code":"CS101"}]`)))
	require.NoError(t, s.Write("courses", []byte(`[]`)))

	v, ok, err := s.Read("courses")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(v))
	require.NoError(t, s.Close())

	// values survive reopening the database
	s, err = New(dbPath)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err = s.Read("courses")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(v))
	assert.Equal(t, dbPath, s.Location())
}

func TestWriteAfterClose(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "coursebook.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Error(t, s.Write("courses", []byte(`[]`)))
}
