// Package git locates git metadata on disk without calling the git CLI.
//
// Only the filesystem layout is inspected: a ".git" directory for plain
// repositories, or a ".git" file holding a single "gitdir: <path>" line for
// submodules and linked worktrees. Git configuration (core.hooksPath and
// friends) is not read.
//
//   - [FindGitEntry]: walk up from a directory to the nearest ".git" entry
//   - [ReadGitDir]: parse a ".git" indirection file
//   - [Locate]: resolve the git directory and hooks directory for a start path
package git
