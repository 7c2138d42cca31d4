package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidGitFile is returned when a ".git" file is not a usable
// "gitdir: <path>" pointer.
var ErrInvalidGitFile = errors.New("invalid .git file")

const gitdirPrefix = "gitdir:"

// Location is where git keeps metadata for a working tree.
type Location struct {
	GitDir    string // real git directory (".git" or the submodule's private dir)
	HooksDir  string // GitDir/hooks; may not exist yet
	WorkTree  string // directory containing the .git entry
	Submodule bool   // true when reached through an indirection file
}

// ReadGitDir parses a ".git" indirection file and returns the absolute path
// it points to. Relative targets resolve against the directory containing
// the file. Only the first line is considered.
func ReadGitDir(gitFile string) (string, error) {
	content, err := os.ReadFile(gitFile)
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	line := string(content)
	if idx := strings.IndexAny(line, "\r\n"); idx != -1 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)

	if !strings.HasPrefix(line, gitdirPrefix) {
		return "", fmt.Errorf("%w: expected 'gitdir: <path>' in %s", ErrInvalidGitFile, gitFile)
	}

	gitdir := strings.TrimSpace(strings.TrimPrefix(line, gitdirPrefix))
	if gitdir == "" {
		return "", fmt.Errorf("%w: empty gitdir path in %s", ErrInvalidGitFile, gitFile)
	}

	// Handle relative paths (gitdir is relative to the file's directory)
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(filepath.Dir(gitFile), gitdir)
	}
	return filepath.Clean(gitdir), nil
}

// Locate finds the git metadata for startDir. It follows at most one level
// of indirection; the target of a gitdir file must be an existing directory.
func Locate(startDir string) (Location, error) {
	entry, err := FindGitEntry(startDir)
	if err != nil {
		return Location{}, err
	}

	if !entry.IsFile {
		return Location{
			GitDir:   entry.Path,
			HooksDir: filepath.Join(entry.Path, "hooks"),
			WorkTree: entry.WorkTree,
		}, nil
	}

	gitDir, err := ReadGitDir(entry.Path)
	if err != nil {
		return Location{}, err
	}
	info, err := os.Stat(gitDir)
	if err != nil {
		return Location{}, fmt.Errorf("%w: gitdir %s: %w", ErrInvalidGitFile, gitDir, err)
	}
	if !info.IsDir() {
		return Location{}, fmt.Errorf("%w: gitdir %s is not a directory", ErrInvalidGitFile, gitDir)
	}

	return Location{
		GitDir:    gitDir,
		HooksDir:  filepath.Join(gitDir, "hooks"),
		WorkTree:  entry.WorkTree,
		Submodule: true,
	}, nil
}
