package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryConfig represents problems with the config file.
	CategoryConfig IssueCategory = "config"
	// CategoryLocation represents reasons install would do nothing.
	CategoryLocation IssueCategory = "location"
	// CategoryHooks represents problems with individual hook files.
	CategoryHooks IssueCategory = "hooks"
)

// Fix actions.
const (
	FixReinstall = "reinstall" // owned hook is stale or not executable
	FixMigrate   = "migrate"   // legacy hook can be replaced
	FixInstall   = "install"   // hook is missing
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        `json:"key"`                  // hook name or config path
	Description string        `json:"description"`          // human-readable description
	FixAction   string        `json:"fix_action,omitempty"` // what --fix would do; empty if manual
	Category    IssueCategory `json:"category"`
}

// Fixable reports whether --fix can repair the issue.
func (i Issue) Fixable() bool {
	return i.FixAction != ""
}

// IssueStats tracks counts by category.
type IssueStats struct {
	HooksCurrent  int // owned hooks matching the rendered script
	HooksFixable  int // hooks --fix can repair
	HooksForeign  int // hooks git-vcs will not touch
	ConfigIssues  int
	LocationSkips int
}
