package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// FileStore keeps one JSON file per collection in a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex // serialises access to the files of this process
}

// NewFileStore returns a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory of the store.
func (f *FileStore) Dir() string { return f.dir }

func (f *FileStore) path(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}

// Load implements Store.
func (f *FileStore) Load(ctx context.Context, collection string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read collection %q: %w", collection, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not decode collection %q: %w", collection, err)
	}
	return nil
}

// Save implements Store. The file is replaced atomically.
func (f *FileStore) Save(ctx context.Context, collection string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode collection %q: %w", collection, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, collection+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not save collection %q: %w", collection, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed
	if _, err := tmp.Write(data); err != nil {
		return errors.Join(fmt.Errorf("could not save collection %q: %w", collection, err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not save collection %q: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), f.path(collection)); err != nil {
		return fmt.Errorf("could not save collection %q: %w", collection, err)
	}
	logrus.WithFields(logrus.Fields{"collection": collection, "bytes": len(data)}).Debug("collection saved")
	return nil
}
