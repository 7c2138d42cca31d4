package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/git-vcs/internal/log"
	"github.com/raphi011/git-vcs/internal/output"
	"github.com/raphi011/git-vcs/internal/resolve"
)

func newPathCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "path [dir]",
		Short:   "Print the hooks directory for a package",
		GroupID: GroupInspect,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the directory git-vcs writes hooks to for the package in dir.

Fails when the package would be skipped by install (not inside a git
repository, or a nested dependency). Use -v to see why.`,
		Example: `  git-vcs path
  ls $(git-vcs path)
  git-vcs path --copy   # copy path to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := packageDir(args)
			if err != nil {
				return err
			}
			return runPath(cmd.Context(), dir, copyToClipboard)
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	return cmd
}

func runPath(ctx context.Context, dir string, copyToClipboard bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	loc, err := resolve.Resolve(dir)
	if err != nil {
		return fmt.Errorf("no hooks directory for %s: %w", dir, err)
	}
	l.Debug("resolved", "worktree", loc.WorkTreeRoot, "project", loc.ProjectRoot, "submodule", loc.Submodule)

	// Copy to clipboard if requested
	if copyToClipboard {
		if err := clipboard.WriteAll(loc.HooksDir); err != nil {
			l.Warn("failed to copy to clipboard", "error", err)
		}
	}

	out.Println(loc.HooksDir)
	return nil
}
