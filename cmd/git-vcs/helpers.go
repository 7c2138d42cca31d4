package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/git-vcs/internal/installer"
)

// packageDir returns the absolute package directory from an optional
// positional argument, defaulting to the working directory.
func packageDir(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return dir, nil
	}
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("invalid directory %q: %w", args[0], err)
	}
	return dir, nil
}

// stdinIsTerminal reports whether stdin is interactive.
func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// formatCounts summarizes the actions in a report, e.g. "12 created, 1 skipped".
// Actions with a zero count are omitted.
func formatCounts(report *installer.Report, actions ...installer.Action) string {
	var parts []string
	for _, a := range actions {
		if n := report.Count(a); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, a))
		}
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}

// suggest returns up to n candidates that fuzzy-match input, best first.
func suggest(input string, candidates []string, n int) []string {
	matches := fuzzy.Find(input, candidates)
	var out []string
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
