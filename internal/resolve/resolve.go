package resolve

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/git-vcs/internal/git"
)

const nodeModules = "node_modules"

var (
	// ErrNotRepository means no usable .git entry exists above the start dir.
	ErrNotRepository = errors.New("not a git repository")
	// ErrNestedDependency means the package is a dependency of a dependency.
	ErrNestedDependency = errors.New("package is a nested dependency")
	// ErrOutsideWorkTree means the project root is not inside the working
	// tree git reported, e.g. a package that is its own git checkout.
	ErrOutsideWorkTree = errors.New("project root is outside the git working tree")
	// ErrRelativePath is returned for start paths that are not absolute.
	ErrRelativePath = errors.New("start path must be absolute")
)

// Location is where hooks for one installing package go.
type Location struct {
	HooksDir       string `json:"hooks_dir"`       // directory git reads hooks from
	GitDir         string `json:"git_dir"`         // git metadata directory
	WorkTreeRoot   string `json:"work_tree"`       // working tree root; hooks run from here
	ProjectRoot    string `json:"project_root"`    // top-level directory of the consuming project
	RelativePrefix string `json:"relative_prefix"` // WorkTreeRoot -> ProjectRoot, slash separated, "." if equal
	Submodule      bool   `json:"submodule"`
}

// IsSkip reports whether err is a silent "do not install" signal.
func IsSkip(err error) bool {
	return errors.Is(err, ErrNotRepository) ||
		errors.Is(err, ErrNestedDependency) ||
		errors.Is(err, ErrOutsideWorkTree)
}

// Resolve computes the hook Location for a package installed at startDir.
// The filesystem is only read; nothing is created.
func Resolve(startDir string) (*Location, error) {
	if !filepath.IsAbs(startDir) {
		return nil, fmt.Errorf("%w: %q", ErrRelativePath, startDir)
	}
	startDir = filepath.Clean(startDir)

	projectRoot, err := ProjectRoot(startDir)
	if err != nil {
		return nil, err
	}

	gitLoc, err := git.Locate(startDir)
	if err != nil {
		if errors.Is(err, git.ErrNotFound) || errors.Is(err, git.ErrInvalidGitFile) {
			return nil, fmt.Errorf("%w: %w", ErrNotRepository, err)
		}
		return nil, err
	}

	prefix, err := RelativePrefix(gitLoc.WorkTree, projectRoot)
	if err != nil {
		return nil, err
	}

	return &Location{
		HooksDir:       gitLoc.HooksDir,
		GitDir:         gitLoc.GitDir,
		WorkTreeRoot:   gitLoc.WorkTree,
		ProjectRoot:    projectRoot,
		RelativePrefix: prefix,
		Submodule:      gitLoc.Submodule,
	}, nil
}

// ProjectRoot strips the trailing node_modules/<package> part from dir.
// Without a node_modules component dir itself is the project root. A project
// root that still lies inside node_modules yields ErrNestedDependency.
func ProjectRoot(dir string) (string, error) {
	parts := splitPath(dir)

	idx := lastIndex(parts, nodeModules)
	if idx == -1 {
		return dir, nil
	}
	if lastIndex(parts[:idx], nodeModules) != -1 {
		return "", fmt.Errorf("%w: %s", ErrNestedDependency, dir)
	}

	root := dir
	for range len(parts) - idx {
		root = filepath.Dir(root)
	}
	return root, nil
}

// RelativePrefix returns the slash-separated path from workTree to
// projectRoot, "." when they are the same directory.
func RelativePrefix(workTree, projectRoot string) (string, error) {
	rel, err := filepath.Rel(workTree, projectRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutsideWorkTree, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s is not below %s", ErrOutsideWorkTree, projectRoot, workTree)
	}
	return strings.TrimSuffix(rel, "/"), nil
}

// splitPath returns the components of a cleaned absolute path, without the
// volume or root.
func splitPath(p string) []string {
	p = strings.TrimPrefix(p, filepath.VolumeName(p))
	p = strings.Trim(filepath.ToSlash(p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func lastIndex(parts []string, name string) int {
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == name {
			return i
		}
	}
	return -1
}
