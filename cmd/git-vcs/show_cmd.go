package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-vcs/internal/hooks"
	"github.com/raphi011/git-vcs/internal/log"
	"github.com/raphi011/git-vcs/internal/output"
	"github.com/raphi011/git-vcs/internal/resolve"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show <hook> [dir]",
		Short:             "Print the script git-vcs writes for a hook",
		GroupID:           GroupInspect,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeHookArg,
		Long: `Print the script install would write for a hook.

The "cd" line is computed for the package in dir (default: current
directory). Outside a repository it falls back to "cd .".`,
		Example: `  git-vcs show pre-commit
  git-vcs show pre-push node_modules/git-vcs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := packageDir(args[1:])
			if err != nil {
				return err
			}
			return runShow(cmd.Context(), args[0], dir)
		},
	}

	return cmd
}

func runShow(ctx context.Context, name, dir string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	spec, err := hooks.Lookup(name)
	if err != nil {
		if s := suggest(name, hooks.Names(), 3); len(s) > 0 {
			return fmt.Errorf("%w (did you mean: %s?)", err, strings.Join(s, ", "))
		}
		return fmt.Errorf("%w (run 'git-vcs hooks' for the list)", err)
	}

	prefix := "."
	loc, err := resolve.Resolve(dir)
	if err != nil {
		l.Debug("using default prefix", "dir", dir, "reason", err)
	} else {
		prefix = loc.RelativePrefix
	}

	out.Print(hooks.Render(spec, prefix))
	return nil
}

// completeHookArg completes the hook name, then falls back to directories.
func completeHookArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}
	var names []string
	for _, name := range hooks.Names() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
