// Package installer writes and removes the git hooks managed by git-vcs.
//
// [InstallFrom] and [UninstallFrom] take the directory of the installing
// package, resolve where its hooks belong and act on every hook in
// [hooks.All]. Both are idempotent and treat "not a repository" and "nested
// dependency" as successful no-ops.
//
// Ownership rules, per hook file:
//
//   - missing: install writes it
//   - carries the git-vcs marker: install rewrites it, uninstall deletes it
//   - carries a legacy marker: install replaces it, uninstall keeps it
//   - anything else: never touched
//
// Each hook is handled independently. A failure on one hook is recorded in
// the [Report] and the remaining hooks are still processed; all failures
// are returned joined.
package installer
