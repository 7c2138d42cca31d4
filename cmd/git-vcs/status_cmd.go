package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-vcs/internal/config"
	"github.com/raphi011/git-vcs/internal/installer"
	"github.com/raphi011/git-vcs/internal/log"
	"github.com/raphi011/git-vcs/internal/output"
	"github.com/raphi011/git-vcs/internal/ui/static"
	"github.com/raphi011/git-vcs/internal/ui/styles"
)

func newStatusCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "status [dir]",
		Short:   "Show which hooks are installed",
		GroupID: GroupInspect,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show the state of every hook git-vcs manages for the package in dir.

States:
  installed  written by git-vcs
  legacy     written by a predecessor tool, replaced on install
  foreign    written by someone else, never touched
  missing    no hook file`,
		Example: `  git-vcs status
  git-vcs status --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := packageDir(args)
			if err != nil {
				return err
			}
			return runStatus(cmd.Context(), dir, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runStatus(ctx context.Context, dir string, jsonOutput bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	cfg := config.FromContext(ctx)

	report, err := installer.Status(ctx, dir)
	if report == nil {
		return err
	}

	if jsonOutput {
		if jerr := out.JSON(report); jerr != nil {
			return jerr
		}
		return err
	}

	if report.Skipped() {
		l.Printf("No hooks for %s: %s\n", dir, report.SkipReason)
		return err
	}

	loc := report.Location
	l.Printf("Hooks directory: %s\n", loc.HooksDir)
	l.Debug("resolved", "worktree", loc.WorkTreeRoot, "prefix", loc.RelativePrefix, "submodule", loc.Submodule)
	fmt.Fprint(styles.Writer(out.Writer(), cfg.Color), static.RenderStatus(report.Results))

	return err
}
