// Package hooks defines the git hooks git-vcs manages and the script
// written for each of them.
//
// # Hook Table
//
// [All] is a fixed table mapping a git hook name to the package script it
// runs. Adding a hook is a data change:
//
//	{Name: "pre-push", Script: "prepush"}
//
// # Ownership
//
// Every generated script carries [Marker] on its second line. [Classify]
// inspects existing file content:
//
//   - [Owned]: contains Marker; safe to overwrite or delete
//   - [Legacy]: contains one of [LegacyMarkers]; overwritten on install
//   - [Foreign]: anything else; never touched
//
// # Placeholder Substitution
//
// The script template uses {hook}, {script} and {cd} placeholders, replaced
// by [Render]. {cd} is shell-quoted only when it contains characters a
// shell would split or expand.
package hooks
