// Package static provides non-interactive terminal output components,
// such as the hook status table.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/git-vcs/internal/installer"
	"github.com/raphi011/git-vcs/internal/ui/styles"
)

// StatusHeaders are the column headers of the hook status table.
var StatusHeaders = []string{"HOOK", "STATE", "PATH"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// HookTableRow formats one status result as a row matching StatusHeaders.
func HookTableRow(res installer.Result) []string {
	state := styles.FormatOwnership(res.Ownership)
	if res.Err != nil {
		state = styles.ErrorStyle.Render("error")
	}
	return []string{res.Hook, state, res.Path}
}

// RenderStatus renders the status table for a report.
func RenderStatus(results []installer.Result) string {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, HookTableRow(res))
	}
	return RenderTable(StatusHeaders, rows)
}
