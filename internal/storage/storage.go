// Package storage provides atomic file writes for generated hook scripts.
package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// File modes used for generated files.
const (
	DirMode  os.FileMode = 0o755
	ExecMode os.FileMode = 0o755
	FileMode os.FileMode = 0o644
)

// WriteFileAtomic writes data to path with the given permissions.
// It writes to a temp file in the same directory, then renames it over
// path, so readers see either the old or the new content. The parent
// directory must exist.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	// CreateTemp uses 0600 and umask would mask WriteFile's mode anyway
	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// ReadIfExists returns the content of path, or ok=false if it does not exist.
func ReadIfExists(path string) (content []byte, ok bool, err error) {
	content, err = os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return content, true, nil
}
