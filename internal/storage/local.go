package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Local stores the filter as a file on disk
type Local struct {
	path string
}

// NewLocal creates a local storage for the filter at path
func NewLocal(path string) *Local {
	return &Local{path: path}
}

// Path returns the filter file path
func (l *Local) Path() string {
	return l.path
}

// Read returns the filter file content
func (l *Local) Read(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read filter: %w", err)
	}
	return string(data), true, nil
}

// Write replaces the filter file through a temp file and rename, so a
// failure leaves the previous filter intact
func (l *Local) Write(ctx context.Context, doc string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(l.path); err == nil {
		perm = info.Mode().Perm()
	}

	return atomicWriteFile(l.path, []byte(doc), perm)
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".filter-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace filter: %w", err)
	}

	success = true
	return nil
}
