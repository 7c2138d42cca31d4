package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestProjectRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     string
		want    string
		wantErr error
	}{
		{"top-level package", "/node_modules/pkg", "/", nil},
		{"package in subdirectory", "/A/B/node_modules/pkg", "/A/B", nil},
		{"scoped package", "/app/node_modules/@scope/pkg", "/app", nil},
		{"no node_modules", "/A/B", "/A/B", nil},
		{"filesystem root", "/", "/", nil},
		{"nested dependency", "/node_modules/A/node_modules/pkg", "", ErrNestedDependency},
		{"deeply nested dependency", "/app/node_modules/a/node_modules/b/node_modules/pkg", "", ErrNestedDependency},
		{"node_modules as a prefix only", "/node_modules_old/pkg", "/node_modules_old/pkg", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ProjectRoot(filepath.FromSlash(tt.dir))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ProjectRoot(%q) error = %v, want %v", tt.dir, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ProjectRoot(%q) error = %v", tt.dir, err)
			}
			if want := filepath.FromSlash(tt.want); got != want {
				t.Errorf("ProjectRoot(%q) = %q, want %q", tt.dir, got, want)
			}
		})
	}
}

func TestRelativePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		workTree    string
		projectRoot string
		want        string
		wantErr     error
	}{
		{"same directory", "/repo", "/repo", ".", nil},
		{"one level", "/repo", "/repo/C", "C", nil},
		{"two levels", "/", "/A/B", "A/B", nil},
		{"outside", "/repo/pkg", "/repo", "", ErrOutsideWorkTree},
		{"sibling", "/repo/a", "/repo/b", "", ErrOutsideWorkTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := RelativePrefix(filepath.FromSlash(tt.workTree), filepath.FromSlash(tt.projectRoot))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RelativePrefix() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RelativePrefix() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RelativePrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativePrefix_SlashSeparated(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/repo")
	project := filepath.Join(root, "apps", "web", "client")

	got, err := RelativePrefix(root, project)
	if err != nil {
		t.Fatalf("RelativePrefix() error = %v", err)
	}
	if got != "apps/web/client" {
		t.Errorf("RelativePrefix() = %q, want %q", got, "apps/web/client")
	}
	if strings.Contains(got, `\`) {
		t.Errorf("RelativePrefix() = %q, want forward slashes only", got)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(t *testing.T, root string)
		start      string
		wantHooks  string
		wantPrefix string
		submodule  bool
	}{
		{
			name:       "basic layout",
			setup:      func(t *testing.T, root string) { mkdirAll(t, filepath.Join(root, ".git", "hooks")) },
			start:      "node_modules/git-vcs",
			wantHooks:  ".git/hooks",
			wantPrefix: ".",
		},
		{
			name:       "project in sub directory",
			setup:      func(t *testing.T, root string) { mkdirAll(t, filepath.Join(root, ".git", "hooks")) },
			start:      "A/B/node_modules/git-vcs",
			wantHooks:  ".git/hooks",
			wantPrefix: "A/B",
		},
		{
			name: "git submodule",
			setup: func(t *testing.T, root string) {
				mkdirAll(t, filepath.Join(root, ".git", "modules", "A", "B"))
				writeFile(t, filepath.Join(root, "A", "B", ".git"), "gitdir: ../../.git/modules/A/B\n")
			},
			start:      "A/B/node_modules/git-vcs",
			wantHooks:  ".git/modules/A/B/hooks",
			wantPrefix: ".",
			submodule:  true,
		},
		{
			name: "git submodule and sub directory",
			setup: func(t *testing.T, root string) {
				mkdirAll(t, filepath.Join(root, ".git", "modules", "A", "B"))
				writeFile(t, filepath.Join(root, "A", "B", ".git"), "gitdir: ../../.git/modules/A/B\n")
			},
			start:      "A/B/C/node_modules/git-vcs",
			wantHooks:  ".git/modules/A/B/hooks",
			wantPrefix: "C",
			submodule:  true,
		},
		{
			name:       "no node_modules",
			setup:      func(t *testing.T, root string) { mkdirAll(t, filepath.Join(root, ".git")) },
			start:      "tools/hooks",
			wantHooks:  ".git/hooks",
			wantPrefix: "tools/hooks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			tt.setup(t, root)
			start := filepath.Join(root, filepath.FromSlash(tt.start))
			mkdirAll(t, start)

			loc, err := Resolve(start)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if want := filepath.Join(root, filepath.FromSlash(tt.wantHooks)); loc.HooksDir != want {
				t.Errorf("HooksDir = %q, want %q", loc.HooksDir, want)
			}
			if loc.RelativePrefix != tt.wantPrefix {
				t.Errorf("RelativePrefix = %q, want %q", loc.RelativePrefix, tt.wantPrefix)
			}
			if loc.Submodule != tt.submodule {
				t.Errorf("Submodule = %v, want %v", loc.Submodule, tt.submodule)
			}
		})
	}
}

func TestResolve_Skips(t *testing.T) {
	t.Parallel()

	t.Run("nested dependency", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		mkdirAll(t, filepath.Join(root, ".git", "hooks"))
		start := filepath.Join(root, "node_modules", "A", "node_modules", "git-vcs")
		mkdirAll(t, start)

		_, err := Resolve(start)
		if !errors.Is(err, ErrNestedDependency) {
			t.Fatalf("Resolve() error = %v, want ErrNestedDependency", err)
		}
		if !IsSkip(err) {
			t.Error("IsSkip() = false, want true")
		}
	})

	t.Run("malformed indirection file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "A", ".git"), "git: ../.git/modules/A")
		start := filepath.Join(root, "A", "node_modules", "git-vcs")
		mkdirAll(t, start)

		_, err := Resolve(start)
		if !errors.Is(err, ErrNotRepository) {
			t.Fatalf("Resolve() error = %v, want ErrNotRepository", err)
		}
		if !IsSkip(err) {
			t.Error("IsSkip() = false, want true")
		}
	})

	t.Run("package is its own checkout", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		mkdirAll(t, filepath.Join(root, ".git"))
		start := filepath.Join(root, "node_modules", "git-vcs")
		mkdirAll(t, filepath.Join(start, ".git"))

		_, err := Resolve(start)
		if !errors.Is(err, ErrOutsideWorkTree) {
			t.Fatalf("Resolve() error = %v, want ErrOutsideWorkTree", err)
		}
	})

	t.Run("no git directory", func(t *testing.T) {
		t.Parallel()
		start := filepath.Join(t.TempDir(), "node_modules", "git-vcs")
		mkdirAll(t, start)

		loc, err := Resolve(start)
		if err == nil {
			t.Skipf("temp dir is inside a git repository at %s", loc.WorkTreeRoot)
		}
		if !errors.Is(err, ErrNotRepository) {
			t.Fatalf("Resolve() error = %v, want ErrNotRepository", err)
		}
	})
}

func TestResolve_RelativePath(t *testing.T) {
	t.Parallel()

	_, err := Resolve(filepath.Join("node_modules", "pkg"))
	if !errors.Is(err, ErrRelativePath) {
		t.Fatalf("Resolve() error = %v, want ErrRelativePath", err)
	}
	if IsSkip(err) {
		t.Error("IsSkip() = true for a relative path, want false")
	}
}
