package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
	if len(cfg.SkipEnv) != 1 || cfg.SkipEnv[0] != DefaultSkipEnv {
		t.Errorf("SkipEnv = %v, want [%s]", cfg.SkipEnv, DefaultSkipEnv)
	}
	if cfg.Verbose || cfg.ConfirmUninstall {
		t.Errorf("Verbose/ConfirmUninstall should default to false, got %+v", cfg)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			check: func(t *testing.T, cfg Config) {
				if cfg.Color != ColorAuto {
					t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
				}
				if len(cfg.SkipEnv) != 1 {
					t.Errorf("SkipEnv = %v, want default", cfg.SkipEnv)
				}
			},
		},
		{
			name: "all keys",
			content: `verbose = true
skip_env = ["CI", "HUSKY"]
confirm_uninstall = true
color = "never"
`,
			check: func(t *testing.T, cfg Config) {
				if !cfg.Verbose {
					t.Error("Verbose = false, want true")
				}
				if strings.Join(cfg.SkipEnv, ",") != "CI,HUSKY" {
					t.Errorf("SkipEnv = %v, want [CI HUSKY]", cfg.SkipEnv)
				}
				if !cfg.ConfirmUninstall {
					t.Error("ConfirmUninstall = false, want true")
				}
				if cfg.Color != ColorNever {
					t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
				}
			},
		},
		{
			name:    "empty skip_env disables skipping",
			content: "skip_env = []\n",
			check: func(t *testing.T, cfg Config) {
				if len(cfg.SkipEnv) != 0 {
					t.Errorf("SkipEnv = %v, want empty", cfg.SkipEnv)
				}
			},
		},
		{
			name:    "default file parses",
			content: defaultConfig,
			check: func(t *testing.T, cfg Config) {
				if cfg.Color != ColorAuto {
					t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
				}
			},
		},
		{
			name:    "invalid color",
			content: `color = "rainbow"`,
			wantErr: `invalid color "rainbow"`,
		},
		{
			name:    "invalid skip_env name",
			content: `skip_env = ["A=B"]`,
			wantErr: "invalid skip_env[0]",
		},
		{
			name:    "invalid toml",
			content: "color = ",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, tt.content)

			cfg, err := LoadFrom(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFrom() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if cfg.Path != path {
				t.Errorf("Path = %q, want %q", cfg.Path, path)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}
}

func TestFilePath_Env(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(EnvConfigPath, path)

	got, err := FilePath()
	if err != nil {
		t.Fatalf("FilePath() error = %v", err)
	}
	if got != path {
		t.Errorf("FilePath() = %q, want %q", got, path)
	}
}

func TestSkipInstall(t *testing.T) {
	t.Parallel()

	env := map[string]string{"CI": "true", "EMPTY": ""}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name     string
		skipEnv  []string
		wantVar  string
		wantSkip bool
	}{
		{"set variable", []string{"CI"}, "CI", true},
		{"empty variable", []string{"EMPTY"}, "", false},
		{"unset variable", []string{"NOPE"}, "", false},
		{"first match wins", []string{"NOPE", "CI"}, "CI", true},
		{"no variables", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Config{SkipEnv: tt.skipEnv}
			name, skip := cfg.SkipInstall(getenv)
			if name != tt.wantVar || skip != tt.wantSkip {
				t.Errorf("SkipInstall() = (%q, %v), want (%q, %v)", name, skip, tt.wantVar, tt.wantSkip)
			}
		})
	}
}

func TestInitAt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := InitAt(path, false); err != nil {
		t.Fatalf("InitAt() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != DefaultContent() {
		t.Error("InitAt() did not write the default config")
	}

	if err := InitAt(path, false); !errors.Is(err, ErrExists) {
		t.Errorf("InitAt() error = %v, want ErrExists", err)
	}
	if err := InitAt(path, true); err != nil {
		t.Errorf("InitAt(force) error = %v", err)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Path = "/should/not/appear"
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `color = "auto"`) {
		t.Errorf("Encode() = %q, want to contain color", got)
	}
	if strings.Contains(got, "/should/not/appear") {
		t.Errorf("Encode() = %q, should not contain Path", got)
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := &Config{Color: ColorNever}
	if got := FromContext(WithConfig(context.Background(), cfg)); got != cfg {
		t.Error("FromContext did not return the stored config")
	}
	if got := FromContext(context.Background()); got.Color != ColorAuto {
		t.Errorf("fallback Color = %q, want %q", got.Color, ColorAuto)
	}
}
