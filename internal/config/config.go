package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/git-vcs/internal/storage"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "GIT_VCS_CONFIG"

// DefaultSkipEnv is the variable that disables install unless configured otherwise.
const DefaultSkipEnv = "GIT_VCS_SKIP_INSTALL"

// ErrExists is returned by Init when the config file is already present.
var ErrExists = errors.New("config file already exists")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the git-vcs configuration
type Config struct {
	Verbose          bool     `toml:"verbose" json:"verbose"`
	SkipEnv          []string `toml:"skip_env" json:"skip_env"`
	ConfirmUninstall bool     `toml:"confirm_uninstall" json:"confirm_uninstall"`
	Color            string   `toml:"color" json:"color"`

	// Path is the file the config was loaded from; empty for defaults.
	Path string `toml:"-" json:"path,omitempty"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		SkipEnv: []string{DefaultSkipEnv},
		Color:   ColorAuto,
	}
}

// SkipInstall reports whether install should be skipped, and the variable
// that caused it. getenv is usually os.Getenv.
func (c *Config) SkipInstall(getenv func(string) string) (string, bool) {
	for _, name := range c.SkipEnv {
		if getenv(name) != "" {
			return name, true
		}
	}
	return "", false
}

// FilePath returns the path of the config file, honoring GIT_VCS_CONFIG.
func FilePath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-vcs", "config.toml"), nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Load reads config from FilePath.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path. Keys absent from the file keep their
// default values.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	cfg.Path = path
	return cfg, nil
}

// Encode writes the effective configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

const defaultConfig = `# git-vcs configuration

# Show debug output for every command (same as -v)
# verbose = false

# Skip "git-vcs install" when any of these environment variables is set
# to a non-empty value. Useful on CI machines.
skip_env = ["GIT_VCS_SKIP_INSTALL"]

# Ask for confirmation before "git-vcs uninstall" removes hooks.
# Only applies when stdin is a terminal; use -y to skip the prompt.
# confirm_uninstall = false

# Styled output: "auto" (detect terminal), "always" or "never"
color = "auto"
`

// DefaultContent returns the commented default config file.
func DefaultContent() string {
	return defaultConfig
}

// Init creates a default config file at FilePath.
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := FilePath()
	if err != nil {
		return "", err
	}
	return path, InitAt(path, force)
}

// InitAt writes the default config file to path.
func InitAt(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), storage.DirMode); err != nil {
		return err
	}
	return storage.WriteFileAtomic(path, []byte(defaultConfig), storage.FileMode)
}
