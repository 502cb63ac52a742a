// Package storage provides the raw filesystem operations for saving
// uploaded files: create/write, permission bits and ownership changes.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Errors identifying which step of the save sequence failed. Callers match
// with errors.Is; the wrapped message carries the underlying cause.
var (
	ErrCreate      = errors.New("create failed")
	ErrWrite       = errors.New("write failed")
	ErrPermissions = errors.New("chmod failed")
	ErrOwner       = errors.New("chown failed")
)

// SaveFile writes data to path, truncating any existing file. There is no
// uniqueness check on the name: the last writer for a given path wins.
func SaveFile(path string, data []byte) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCreate, path, err)
	}

	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return int64(n), fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return int64(n), fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}

	return int64(n), nil
}

// ApplyMode sets the permission bits of path to exactly mode.
func ApplyMode(path string, mode fs.FileMode) error {
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPermissions, path, err)
	}
	return nil
}

// RemoveFile deletes path if it exists. A missing file is not an error so
// that rollback after a failed create stays quiet.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}
	return nil
}
