package fs

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

var (
	StorageExtension = ".json"

	ErrInvalidKey = fmt.Errorf("invalid storage key")
)

// Store keeps each key in its own file under Directory.
type Store struct {
	*sync.Mutex

	Directory string `yaml:"directory" validate:"required,dir"`
	Log       *zap.Logger

	// contents of the last write we made per key, so the watcher can tell our
	// own writes apart from someone else's
	lastWritten map[string][]byte
}

func New(dir string, createDirIfMissing bool) (*Store, error) {
	expandedPath, err := homedir.Expand(dir)
	if err != nil {
		return nil, err
	}

	s := Store{
		Mutex:       &sync.Mutex{},
		Directory:   expandedPath,
		Log:         zap.NewNop(),
		lastWritten: map[string][]byte{},
	}

	finfo, err := os.Stat(expandedPath)
	if createDirIfMissing && (err != nil || !finfo.IsDir()) {
		err := os.MkdirAll(expandedPath, 0700)
		if err != nil {
			return nil, fmt.Errorf("error creating %s: %w", s.Directory, err)
		}
	}

	err = s.Validate()
	if err != nil {
		return nil, fmt.Errorf("error validating storage provider: %w", err)
	}

	return &s, nil
}

func (x *Store) Validate() error {
	validate := validator.New()
	return validate.Struct(*x)
}

func (x *Store) StoragePath(key string) string {
	return path.Join(x.Directory, key+StorageExtension)
}

func (x *Store) Location() string { return x.Directory }

func checkKey(key string) error {
	if key == "" || filepath.Base(key) != key || strings.HasPrefix(key, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func (x *Store) Read(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}

	x.Lock()
	defer x.Unlock()

	b, err := ioutil.ReadFile(x.StoragePath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("unable to read %s: %w", key, err)
	}
	x.lastWritten[key] = b
	return b, true, nil
}

func (x *Store) Write(key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	x.Lock()
	defer x.Unlock()

	targetpath := x.StoragePath(key)
	finfo, err := os.Stat(targetpath)
	if err == nil && finfo.IsDir() {
		err := os.RemoveAll(targetpath)
		if err != nil {
			return err
		}
	}

	f, err := os.OpenFile(targetpath, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	x.lastWritten[key] = append([]byte(nil), value...)

	_, err = f.Write(value)
	if err != nil {
		return fmt.Errorf("unable to write %s: %w", key, err)
	}

	err = f.Sync()
	if err != nil {
		return fmt.Errorf("unable to sync %s: %w", key, err)
	}
	return nil
}

func (x *Store) Close() error { return nil }

// Watch reports keys whose files were changed by something other than this
// Store. The channel is closed once ctx is done.
func (x *Store) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = watcher.Add(x.Directory)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", x.Directory, err)
	}

	changes := make(chan string)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				key, ok := x.keyFor(event.Name)
				if !ok || !x.changedExternally(key) {
					continue
				}
				x.Log.Debug("storage changed on disk", zap.String("key", key), zap.String("file", event.Name))
				select {
				case changes <- key:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				x.Log.Warn("watcher error", zap.Error(err))
			}
		}
	}()

	return changes, nil
}

func (x *Store) keyFor(fileName string) (string, bool) {
	base := filepath.Base(fileName)
	if !strings.HasSuffix(base, StorageExtension) {
		return "", false
	}
	key := strings.TrimSuffix(base, StorageExtension)
	return key, checkKey(key) == nil
}

func (x *Store) changedExternally(key string) bool {
	x.Lock()
	defer x.Unlock()

	b, err := ioutil.ReadFile(x.StoragePath(key))
	if err != nil {
		return false
	}
	if bytes.Equal(b, x.lastWritten[key]) {
		return false
	}
	x.lastWritten[key] = b
	return true
}
