package git

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no ".git" entry exists on the ancestor chain.
var ErrNotFound = errors.New(".git not found")

// Entry is a ".git" entry found while walking up the directory tree.
type Entry struct {
	Path     string // absolute path of the .git entry itself
	WorkTree string // directory containing the .git entry
	IsFile   bool   // true for a gitdir indirection file
}

// FindGitEntry walks from startDir up to the filesystem root and returns the
// first ".git" entry it finds. Directories and regular files both count;
// anything else (sockets, unreadable entries) is ignored and the walk goes on.
func FindGitEntry(startDir string) (Entry, error) {
	dir := filepath.Clean(startDir)
	for {
		gitPath := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			switch {
			case info.IsDir():
				return Entry{Path: gitPath, WorkTree: dir}, nil
			case info.Mode().IsRegular():
				return Entry{Path: gitPath, WorkTree: dir, IsFile: true}, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Entry{}, ErrNotFound
		}
		dir = parent
	}
}
