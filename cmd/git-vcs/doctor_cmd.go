package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-vcs/internal/config"
	"github.com/raphi011/git-vcs/internal/doctor"
	"github.com/raphi011/git-vcs/internal/log"
	"github.com/raphi011/git-vcs/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var (
		fix        bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "doctor [dir]",
		Short:   "Diagnose and repair hook issues",
		GroupID: GroupConfig,
		Args:    cobra.MaximumNArgs(1),
		Long: `Diagnose hook and config issues for the package in dir.

Checks:
- Config file is valid
- Package is inside a git repository and not a nested dependency
- Every hook is installed, current and executable
- No foreign hook blocks a package script`,
		Example: `  git-vcs doctor          # Check for issues
  git-vcs doctor --fix    # Reinstall stale or missing hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := packageDir(args)
			if err != nil {
				return err
			}
			configPath, err := config.FilePath()
			if err != nil {
				log.FromContext(cmd.Context()).Debug("skipping config check", "error", err)
				configPath = ""
			}
			return runDoctor(cmd.Context(), dir, configPath, fix, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Reinstall missing, stale and legacy hooks")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runDoctor(ctx context.Context, dir, configPath string, fix, jsonOutput bool) error {
	l := log.FromContext(ctx)

	report, err := doctor.Check(ctx, dir, configPath)
	if err != nil {
		return err
	}

	if fix {
		if err := doctor.Fix(ctx, dir, report); err != nil {
			return err
		}
	}

	if jsonOutput {
		return output.FromContext(ctx).JSON(report)
	}

	doctor.Print(l, report)

	if report.Fixed > 0 {
		l.Printf("\nFixed %d hooks\n", report.Fixed)
		return nil
	}
	if report.Stats.HooksFixable > 0 {
		l.Println("\nRun 'git-vcs doctor --fix' to repair.")
		return fmt.Errorf("%d hooks need install", report.Stats.HooksFixable)
	}
	return nil
}
