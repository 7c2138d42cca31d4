package hooks

import (
	"fmt"
	"slices"
)

// Spec is a git hook managed by git-vcs.
type Spec struct {
	Name   string // git hook file name
	Script string // package script the hook runs
}

// All lists every hook git-vcs installs, in git's lifecycle order.
var All = []Spec{
	{Name: "applypatch-msg", Script: "applypatchmsg"},
	{Name: "pre-applypatch", Script: "preapplypatch"},
	{Name: "post-applypatch", Script: "postapplypatch"},
	{Name: "pre-commit", Script: "precommit"},
	{Name: "prepare-commit-msg", Script: "preparecommitmsg"},
	{Name: "commit-msg", Script: "commitmsg"},
	{Name: "post-commit", Script: "postcommit"},
	{Name: "pre-rebase", Script: "prerebase"},
	{Name: "post-checkout", Script: "postcheckout"},
	{Name: "post-merge", Script: "postmerge"},
	{Name: "pre-push", Script: "prepush"},
	{Name: "pre-auto-gc", Script: "preautogc"},
	{Name: "post-rewrite", Script: "postrewrite"},
}

// Names returns the hook names from All.
func Names() []string {
	names := make([]string, len(All))
	for i, spec := range All {
		names[i] = spec.Name
	}
	return names
}

// Lookup returns the Spec for a hook name.
func Lookup(name string) (Spec, error) {
	idx := slices.IndexFunc(All, func(s Spec) bool { return s.Name == name })
	if idx == -1 {
		return Spec{}, fmt.Errorf("unknown hook %q", name)
	}
	return All[idx], nil
}
