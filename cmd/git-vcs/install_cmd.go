package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-vcs/internal/config"
	"github.com/raphi011/git-vcs/internal/installer"
	"github.com/raphi011/git-vcs/internal/log"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install [dir]",
		Short:   "Install git hooks for a package",
		GroupID: GroupHooks,
		Args:    cobra.MaximumNArgs(1),
		Long: `Install git hooks for the package in dir (default: current directory).

The package is usually node_modules/<name> of a project. Hooks are written
to the hooks directory of the repository containing the project and change
into the project directory before running "npm run <script>".

Nothing happens when the project is not inside a git repository, or when
the package is a dependency of another dependency. Existing hooks that
git-vcs did not write are left untouched.`,
		Example: `  git-vcs install                      # install from the current package
  git-vcs install node_modules/git-vcs # install for a specific package dir
  GIT_VCS_SKIP_INSTALL=1 git-vcs install # skipped`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := packageDir(args)
			if err != nil {
				return err
			}
			return runInstall(cmd.Context(), dir, os.Getenv)
		},
	}

	return cmd
}

func runInstall(ctx context.Context, dir string, getenv func(string) string) error {
	l := log.FromContext(ctx)
	cfg := config.FromContext(ctx)

	if name, skip := cfg.SkipInstall(getenv); skip {
		l.Debug("install skipped", "env", name)
		return nil
	}

	report, err := installer.InstallFrom(ctx, dir)
	if report == nil || report.Skipped() {
		return err
	}

	for _, res := range report.Results {
		if res.Action == installer.ActionSkipped {
			l.Printf("Skipped %s: existing hook was not written by git-vcs\n", res.Path)
		}
	}
	l.Printf("Hooks in %s: %s\n", report.Location.HooksDir, formatCounts(report,
		installer.ActionCreated, installer.ActionUpdated, installer.ActionMigrated,
		installer.ActionUnchanged, installer.ActionSkipped, installer.ActionFailed))

	return err
}
