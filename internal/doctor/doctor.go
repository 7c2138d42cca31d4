package doctor

import (
	"context"
	"fmt"

	"github.com/raphi011/git-vcs/internal/config"
	"github.com/raphi011/git-vcs/internal/installer"
	"github.com/raphi011/git-vcs/internal/log"
	"github.com/raphi011/git-vcs/internal/ui/styles"
)

// Report is the outcome of a doctor run.
type Report struct {
	Issues []Issue    `json:"issues"`
	Stats  IssueStats `json:"stats"`
	Fixed  int        `json:"fixed,omitempty"`
}

// Check runs every diagnostic for the package at packageDir. configPath is
// the config file to validate; empty skips the config check.
func Check(ctx context.Context, packageDir, configPath string) (*Report, error) {
	l := log.FromContext(ctx)
	r := &Report{}

	if configPath != "" {
		l.Debug("checking config", "path", configPath)
		if issue, ok := checkConfig(configPath); ok {
			r.Issues = append(r.Issues, issue)
			r.Stats.ConfigIssues++
		}
	}

	l.Debug("checking hooks", "dir", packageDir)
	status, err := installer.Status(ctx, packageDir)
	if status == nil {
		return r, err
	}
	if status.Skipped() {
		r.Issues = append(r.Issues, Issue{
			Key:         packageDir,
			Description: status.SkipReason,
			Category:    CategoryLocation,
		})
		r.Stats.LocationSkips++
		return r, nil
	}

	for _, res := range status.Results {
		issue, ok := checkHook(res)
		switch {
		case !ok:
			r.Stats.HooksCurrent++
			continue
		case issue.Fixable():
			r.Stats.HooksFixable++
		default:
			r.Stats.HooksForeign++
		}
		r.Issues = append(r.Issues, issue)
	}
	return r, err
}

// Fix repairs every fixable hook issue by re-running install.
func Fix(ctx context.Context, packageDir string, r *Report) error {
	if r.Stats.HooksFixable == 0 {
		return nil
	}
	report, err := installer.InstallFrom(ctx, packageDir)
	if report != nil {
		r.Fixed = report.Count(installer.ActionCreated) +
			report.Count(installer.ActionUpdated) +
			report.Count(installer.ActionMigrated)
	}
	return err
}

func checkConfig(path string) (Issue, bool) {
	if _, err := config.LoadFrom(path); err != nil {
		return Issue{
			Key:         path,
			Description: err.Error(),
			Category:    CategoryConfig,
		}, true
	}
	return Issue{}, false
}

// checkHook returns an issue for a status result, or false if the hook is
// current.
func checkHook(res installer.Result) (Issue, bool) {
	issue := Issue{Key: res.Hook, Category: CategoryHooks}

	switch res.Action {
	case installer.ActionUnchanged:
		return Issue{}, false
	case installer.ActionCreated:
		issue.Description = "not installed"
		issue.FixAction = FixInstall
	case installer.ActionUpdated:
		issue.Description = "out of date or not executable"
		issue.FixAction = FixReinstall
	case installer.ActionMigrated:
		issue.Description = "written by a predecessor tool"
		issue.FixAction = FixMigrate
	case installer.ActionSkipped:
		issue.Description = "existing hook was not written by git-vcs; the package script will not run"
	default:
		issue.Description = fmt.Sprintf("cannot inspect %s: %v", res.Path, res.Err)
	}
	return issue, true
}

// Print writes the summary and issues grouped by category.
func Print(l *log.Logger, r *Report) {
	s := r.Stats

	l.Println()
	if s.HooksCurrent > 0 {
		l.Printf("  %s %d hooks current\n", styles.SuccessStyle.Render("✓"), s.HooksCurrent)
	}
	if s.HooksFixable > 0 {
		l.Printf("  %s %d hooks need install\n", styles.WarningStyle.Render("⚠"), s.HooksFixable)
	}
	if s.HooksForeign > 0 {
		l.Printf("  %s %d hooks blocked by existing files\n", styles.WarningStyle.Render("⚠"), s.HooksForeign)
	}
	if s.ConfigIssues > 0 {
		l.Printf("  %s config file invalid\n", styles.ErrorStyle.Render("✗"))
	}
	if s.LocationSkips > 0 {
		l.Printf("  %s install would do nothing\n", styles.MutedStyle.Render("-"))
	}

	if len(r.Issues) == 0 {
		l.Printf("\n%s No issues found\n", styles.SuccessStyle.Render("✓"))
		return
	}

	l.Printf("\nFound %d issues:\n", len(r.Issues))
	printIssuesByCategory(l, r.Issues)
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(l *log.Logger, issues []Issue) {
	// Group by category
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryConfig:   "Config issues",
		CategoryLocation: "Location",
		CategoryHooks:    "Hook issues",
	}

	for _, cat := range []IssueCategory{CategoryConfig, CategoryLocation, CategoryHooks} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		l.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			l.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
