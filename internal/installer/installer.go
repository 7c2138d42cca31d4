package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/git-vcs/internal/hooks"
	"github.com/raphi011/git-vcs/internal/log"
	"github.com/raphi011/git-vcs/internal/resolve"
	"github.com/raphi011/git-vcs/internal/storage"
)

// Action is what happened to a single hook file.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionMigrated  Action = "migrated"
	ActionUnchanged Action = "unchanged"
	ActionSkipped   Action = "skipped" // foreign hook left alone by install
	ActionRemoved   Action = "removed"
	ActionKept      Action = "kept" // foreign or legacy hook left alone by uninstall
	ActionFailed    Action = "failed"
)

// Result describes one hook after an operation.
type Result struct {
	Hook      string          `json:"hook"`
	Path      string          `json:"path"`
	Ownership hooks.Ownership `json:"state"`
	Action    Action          `json:"action,omitempty"`
	Err       error           `json:"-"`
}

// Report is the outcome of an operation. Location is nil when the resolver
// signalled that there is nothing to do; SkipReason then says why.
type Report struct {
	Location   *resolve.Location `json:"location,omitempty"`
	SkipReason string            `json:"skip_reason,omitempty"`
	Results    []Result          `json:"hooks,omitempty"`
}

// Skipped reports whether the operation was a no-op because of the resolver.
func (r *Report) Skipped() bool {
	return r.Location == nil
}

// Count returns how many results have the given action.
func (r *Report) Count(action Action) int {
	n := 0
	for _, res := range r.Results {
		if res.Action == action {
			n++
		}
	}
	return n
}

// InstallFrom installs every hook for the package at packageDir.
func InstallFrom(ctx context.Context, packageDir string) (*Report, error) {
	l := log.FromContext(ctx)

	report, err := locate(ctx, packageDir)
	if err != nil || report.Skipped() {
		return report, err
	}
	loc := report.Location

	if err := os.MkdirAll(loc.HooksDir, storage.DirMode); err != nil {
		return report, fmt.Errorf("failed to create hooks directory %s: %w", loc.HooksDir, err)
	}

	var errs []error
	for _, spec := range hooks.All {
		res := installHook(loc, spec)
		l.Debug("install", "hook", res.Hook, "action", res.Action, "path", res.Path)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		report.Results = append(report.Results, res)
	}
	return report, errors.Join(errs...)
}

// UninstallFrom removes every hook git-vcs wrote for the package at
// packageDir. Hooks without the current marker are kept.
func UninstallFrom(ctx context.Context, packageDir string) (*Report, error) {
	l := log.FromContext(ctx)

	report, err := locate(ctx, packageDir)
	if err != nil || report.Skipped() {
		return report, err
	}

	var errs []error
	for _, spec := range hooks.All {
		res, ok := uninstallHook(report.Location, spec)
		if !ok {
			continue
		}
		l.Debug("uninstall", "hook", res.Hook, "action", res.Action, "path", res.Path)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		report.Results = append(report.Results, res)
	}
	return report, errors.Join(errs...)
}

// Status classifies every hook for the package at packageDir without
// changing anything. Each result's Action is what InstallFrom would do.
func Status(ctx context.Context, packageDir string) (*Report, error) {
	report, err := locate(ctx, packageDir)
	if err != nil || report.Skipped() {
		return report, err
	}

	var errs []error
	for _, spec := range hooks.All {
		res, _ := plan(report.Location, spec)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		report.Results = append(report.Results, res)
	}
	return report, errors.Join(errs...)
}

// locate resolves packageDir and converts silent resolver signals into a
// skipped report.
func locate(ctx context.Context, packageDir string) (*Report, error) {
	loc, err := resolve.Resolve(packageDir)
	if err != nil {
		if resolve.IsSkip(err) {
			log.FromContext(ctx).Debug("nothing to do", "dir", packageDir, "reason", err)
			return &Report{SkipReason: err.Error()}, nil
		}
		return nil, err
	}
	log.FromContext(ctx).Debug("resolved",
		"hooks", loc.HooksDir, "worktree", loc.WorkTreeRoot, "prefix", loc.RelativePrefix)
	return &Report{Location: loc}, nil
}

// plan inspects the hook file for spec and decides what install would do.
// It returns the rendered script alongside.
func plan(loc *resolve.Location, spec hooks.Spec) (Result, string) {
	path := filepath.Join(loc.HooksDir, spec.Name)
	res := Result{Hook: spec.Name, Path: path}

	own, info, err := inspect(path)
	res.Ownership = own
	if err != nil {
		return failed(res, err), ""
	}

	script := hooks.Render(spec, loc.RelativePrefix)

	switch own {
	case hooks.Missing:
		res.Action = ActionCreated
	case hooks.Owned:
		if info.content == script && info.executable {
			res.Action = ActionUnchanged
		} else {
			res.Action = ActionUpdated
		}
	case hooks.Legacy:
		res.Action = ActionMigrated
	default:
		res.Action = ActionSkipped
	}
	return res, script
}

func installHook(loc *resolve.Location, spec hooks.Spec) Result {
	res, script := plan(loc, spec)
	switch res.Action {
	case ActionCreated, ActionUpdated, ActionMigrated:
	default:
		return res
	}

	if err := storage.WriteFileAtomic(res.Path, []byte(script), storage.ExecMode); err != nil {
		return failed(res, fmt.Errorf("failed to write hook %s: %w", res.Path, err))
	}
	res.Ownership = hooks.Owned
	return res
}

// uninstallHook returns ok=false for hooks that do not exist.
func uninstallHook(loc *resolve.Location, spec hooks.Spec) (Result, bool) {
	path := filepath.Join(loc.HooksDir, spec.Name)
	res := Result{Hook: spec.Name, Path: path}

	own, _, err := inspect(path)
	res.Ownership = own
	if err != nil {
		return failed(res, err), true
	}

	switch own {
	case hooks.Missing:
		return res, false
	case hooks.Owned:
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return failed(res, fmt.Errorf("failed to remove hook %s: %w", path, err)), true
		}
		res.Action = ActionRemoved
		res.Ownership = hooks.Missing
	default:
		res.Action = ActionKept
	}
	return res, true
}

type fileInfo struct {
	content    string
	executable bool
}

// inspect classifies the file at path. Anything that is not a regular file
// (a directory, a socket, a dangling symlink) counts as foreign.
func inspect(path string) (hooks.Ownership, fileInfo, error) {
	lst, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return hooks.Missing, fileInfo{}, nil
		}
		return hooks.Missing, fileInfo{}, fmt.Errorf("failed to inspect hook %s: %w", path, err)
	}

	st := lst
	if lst.Mode()&os.ModeSymlink != 0 {
		// The link itself is the user's file even when its target is gone.
		if st, err = os.Stat(path); err != nil {
			return hooks.Foreign, fileInfo{}, nil
		}
	}
	if !st.Mode().IsRegular() {
		return hooks.Foreign, fileInfo{}, nil
	}

	content, ok, err := storage.ReadIfExists(path)
	if err != nil {
		return hooks.Missing, fileInfo{}, fmt.Errorf("failed to read hook %s: %w", path, err)
	}
	if !ok {
		return hooks.Foreign, fileInfo{}, nil
	}

	info := fileInfo{
		content:    string(content),
		executable: st.Mode().Perm()&0o111 != 0,
	}
	return hooks.Classify(info.content), info, nil
}

func failed(res Result, err error) Result {
	res.Action = ActionFailed
	res.Err = err
	return res
}
