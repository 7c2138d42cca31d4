// Package config handles loading and validation of git-vcs configuration.
//
// Configuration is read from $GIT_VCS_CONFIG, or ~/.config/git-vcs/config.toml
// when that is unset. A missing file yields [Default]; an invalid file is an
// error.
//
// # Key Settings
//
//   - verbose: show debug output without passing -v
//   - skip_env: environment variables that, when non-empty, make "install" a no-op
//   - confirm_uninstall: ask before removing hooks when stdin is a terminal
//   - color: "auto", "always" or "never" for styled terminal output
//
// The hook table and ownership marker are not configurable.
package config
