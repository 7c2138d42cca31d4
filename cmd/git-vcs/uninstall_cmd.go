package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-vcs/internal/config"
	"github.com/raphi011/git-vcs/internal/hooks"
	"github.com/raphi011/git-vcs/internal/installer"
	"github.com/raphi011/git-vcs/internal/log"
	"github.com/raphi011/git-vcs/internal/ui/prompt"
	"github.com/raphi011/git-vcs/internal/ui/styles"
)

func newUninstallCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "uninstall [dir]",
		Short:   "Remove git hooks installed by git-vcs",
		GroupID: GroupHooks,
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove the git hooks git-vcs installed for the package in dir.

Only hooks carrying the git-vcs marker are removed. Hooks written by the
user, another tool or a predecessor of git-vcs are kept. Hooks that were
skipped during install are not restored.

With confirm_uninstall = true in the config and an interactive terminal,
asks before removing anything.`,
		Example: `  git-vcs uninstall      # remove hooks for the current package
  git-vcs uninstall -y   # never ask`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := packageDir(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			var confirm confirmFunc
			if cfg.ConfirmUninstall && !yes && stdinIsTerminal() {
				confirm = func(msg string) (bool, error) {
					res, err := prompt.Confirm(msg, styles.Profile(os.Stderr, cfg.Color))
					if err != nil {
						return false, err
					}
					return res.Confirmed && !res.Cancelled, nil
				}
			}
			return runUninstall(ctx, dir, confirm)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

// confirmFunc asks the user a yes/no question. A nil confirmFunc means yes.
type confirmFunc func(msg string) (bool, error)

func runUninstall(ctx context.Context, dir string, confirm confirmFunc) error {
	l := log.FromContext(ctx)

	if confirm != nil {
		status, err := installer.Status(ctx, dir)
		if err != nil {
			return err
		}
		owned := ownedCount(status)
		if status.Skipped() || owned == 0 {
			l.Debug("nothing to uninstall", "dir", dir)
			return nil
		}
		ok, err := confirm(fmt.Sprintf("Remove %d git-vcs hooks from %s?", owned, status.Location.HooksDir))
		if err != nil {
			return err
		}
		if !ok {
			l.Println("Aborted")
			return nil
		}
	}

	report, err := installer.UninstallFrom(ctx, dir)
	if report == nil || report.Skipped() {
		return err
	}

	l.Printf("Hooks in %s: %s\n", report.Location.HooksDir, formatCounts(report,
		installer.ActionRemoved, installer.ActionKept, installer.ActionFailed))

	return err
}

func ownedCount(report *installer.Report) int {
	n := 0
	for _, res := range report.Results {
		if res.Ownership == hooks.Owned {
			n++
		}
	}
	return n
}
