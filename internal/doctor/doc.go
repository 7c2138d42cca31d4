// Package doctor diagnoses and repairs the hooks git-vcs manages for a
// package.
//
// Checks are grouped into categories:
//
//   - [CategoryConfig]: the config file cannot be read or is invalid
//   - [CategoryLocation]: install would be a no-op (not inside a git
//     repository, nested dependency, project outside the working tree)
//   - [CategoryHooks]: hooks that are out of date, not executable, written
//     by a predecessor tool, or shadowed by a foreign hook
//
// Hook issues with a fix action are repaired by re-running install, which
// rewrites owned hooks and migrates legacy ones. Foreign hooks are reported
// but never touched.
package doctor
