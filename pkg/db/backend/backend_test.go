package backend

import (
	"path/filepath"
	"testing"

	"github.com/byxorna/coursebook/pkg/config"
	"github.com/byxorna/coursebook/pkg/db/fs"
	"github.com/byxorna/coursebook/pkg/db/memory"
	"github.com/byxorna/coursebook/pkg/db/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(config.Storage{Backend: config.BackendFile, Path: filepath.Join(dir, "records")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &fs.Store{}, kv)
	assert.Equal(t, filepath.Join(dir, "records"), kv.Location())
	assert.NoError(t, kv.Close())

	kv, err = Open(config.Storage{Backend: config.BackendSQLite, Path: filepath.Join(dir, "courses.db")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, kv)
	require.NoError(t, kv.Write("courses", []byte("[]")))
	assert.NoError(t, kv.Close())

	kv, err = Open(config.Storage{Backend: config.BackendMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, kv)

	_, err = Open(config.Storage{Backend: "localStorage"}, nil)
	assert.EqualError(t, err, `unknown storage backend "localStorage"`)
}
