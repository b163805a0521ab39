package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File stores the document as one JSON file on disk. Saves are atomic:
// the blob is written to a temp file in the same directory and renamed over
// the target, so a crash mid-write never leaves a half-written document.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile constructs a File store writing to path. The parent directory is
// created on first save if missing.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the current blob. A file that does not exist yet is not an
// error; it returns (nil, nil) and the caller starts from defaults.
func (f *File) Load(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.File.Load: %w", err)
	}
	return raw, nil
}

// Save atomically replaces the stored blob.
func (f *File) Save(ctx context.Context, raw []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store.File.Save: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store.File.Save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("store.File.Save: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store.File.Save: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("store.File.Save: rename: %w", err)
	}
	return nil
}
