package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/byxorna/coursebook/pkg/config"
	"github.com/byxorna/coursebook/pkg/db"
	"github.com/byxorna/coursebook/pkg/db/backend"
	"github.com/byxorna/coursebook/pkg/form"
	"github.com/byxorna/coursebook/pkg/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// session is everything a command needs, built once from the config file.
type session struct {
	cfg   *config.Config
	log   *zap.Logger
	kv    db.KV
	store *store.Store
}

func openSession(configFile string, verbose bool) (*session, error) {
	cfg, err := config.NewFromFile(configFile)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return nil, err
	}

	kv, err := backend.Open(cfg.Storage, log.Named("db"))
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("unable to open %s storage: %w", cfg.Storage.Backend, err)
	}

	s, err := store.New(kv, log.Named("store"))
	if err != nil {
		_ = kv.Close()
		_ = log.Sync()
		return nil, err
	}

	log.Debug("session opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("location", kv.Location()),
		zap.Int("courses", s.Len()))

	return &session{cfg: cfg, log: log, kv: kv, store: s}, nil
}

func (s *session) controller() *form.Controller {
	return form.New(s.store, s.log.Named("form"))
}

func (s *session) Close() {
	if err := s.kv.Close(); err != nil {
		s.log.Warn("closing storage", zap.Error(err))
	}
	_ = s.log.Sync()
}

// newLogger writes JSON logs to the configured file. The terminal belongs to
// the UI, so nothing is logged to stderr.
func newLogger(cfg config.Log, verbose bool) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
		return nil, fmt.Errorf("unable to create log directory: %w", err)
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}
