// Package backend opens the durable slot store named by the configuration.
package backend

import (
	"fmt"

	"github.com/byxorna/coursebook/pkg/config"
	"github.com/byxorna/coursebook/pkg/db"
	"github.com/byxorna/coursebook/pkg/db/fs"
	"github.com/byxorna/coursebook/pkg/db/memory"
	"github.com/byxorna/coursebook/pkg/db/sqlite"
	"go.uber.org/zap"
)

// Open returns the KV for cfg. Directories are created as needed.
func Open(cfg config.Storage, log *zap.Logger) (db.KV, error) {
	if log == nil {
		log = zap.NewNop()
	}

	switch cfg.Backend {
	case config.BackendFile:
		s, err := fs.New(cfg.Path, true)
		if err != nil {
			return nil, err
		}
		s.Log = log.Named("fs")
		return s, nil
	case config.BackendSQLite:
		return sqlite.New(cfg.Path)
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
