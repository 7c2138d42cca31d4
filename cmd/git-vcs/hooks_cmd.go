package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/git-vcs/internal/config"
	"github.com/raphi011/git-vcs/internal/hooks"
	"github.com/raphi011/git-vcs/internal/output"
	"github.com/raphi011/git-vcs/internal/ui/static"
	"github.com/raphi011/git-vcs/internal/ui/styles"
)

func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hooks",
		Short:   "List the hooks git-vcs manages",
		GroupID: GroupInspect,
		Args:    cobra.NoArgs,
		Long: `List every git hook git-vcs installs and the package script it runs.

A hook does nothing unless package.json defines the script.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			_, err := styles.Writer(out.Writer(), cfg.Color).Write([]byte(hooksTable()))
			return err
		},
	}

	return cmd
}

func hooksTable() string {
	rows := make([][]string, 0, len(hooks.All))
	for _, spec := range hooks.All {
		rows = append(rows, []string{spec.Name, "npm run " + spec.Script})
	}
	return static.RenderTable([]string{"HOOK", "RUNS"}, rows)
}
