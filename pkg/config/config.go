package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	XDGName = "coursebook"

	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	EnvStorageBackend = "COURSEBOOK_STORAGE_BACKEND"
	EnvStoragePath    = "COURSEBOOK_STORAGE_PATH"
	EnvLogLevel       = "COURSEBOOK_LOG_LEVEL"
)

var (
	// Default is the configuration used when no config file exists, and the
	// base any config file is layered over
	Default = Config{
		Storage: Storage{
			Backend: BackendFile,
			Path:    dataPath(""),
		},
		NotificationTimeout: 3000 * time.Millisecond,
		Log: Log{
			Level: "info",
			File:  statePath(XDGName + ".log"),
		},
	}
)

type Config struct {
	Storage             Storage       `yaml:"storage"`
	NotificationTimeout time.Duration `yaml:"notificationTimeout" validate:"required"`
	Log                 Log           `yaml:"log"`
}

// Storage selects where the course records are kept. Path is a directory for
// the file backend and a database file for sqlite.
type Storage struct {
	Backend string `yaml:"backend" validate:"required,oneof=file sqlite memory"`
	Path    string `yaml:"path" validate:""`
}

type Log struct {
	Level string `yaml:"level" validate:"required,oneof=debug info warn error"`
	File  string `yaml:"file" validate:""`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	return finish(&c)
}

// NewFromFile loads the config at path. A missing file yields Default.
// Environment overrides are applied in both cases.
func NewFromFile(path string) (*Config, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expandedPath)
	if os.IsNotExist(err) {
		c := Default
		return finish(&c)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", expandedPath, err)
	}
	defer f.Close()

	return NewFromReader(f)
}

func finish(c *Config) (*Config, error) {
	c.applyEnv()

	// the default path is a directory; sqlite wants a file inside it
	if c.Storage.Backend == BackendSQLite && c.Storage.Path == Default.Storage.Path {
		c.Storage.Path = dataPath(XDGName + ".db")
	}
	if c.Storage.Backend != BackendMemory && c.Storage.Path == "" {
		return nil, fmt.Errorf("config validation error: storage.path is required for the %s backend", c.Storage.Backend)
	}

	if c.Storage.Path != "" {
		p, err := homedir.Expand(c.Storage.Path)
		if err != nil {
			return nil, err
		}
		c.Storage.Path = p
	}

	if c.Log.File != "" {
		p, err := homedir.Expand(c.Log.File)
		if err != nil {
			return nil, err
		}
		c.Log.File = p
	}

	validate := validator.New()
	err := validate.Struct(*c)
	if err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

func dataPath(name string) string {
	return filepath.Join(xdg.DataHome, XDGName, name)
}

func statePath(name string) string {
	return filepath.Join(xdg.StateHome, XDGName, name)
}
