package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want data", cfg.DataDir)
	}
	if cfg.ConfigFile != filepath.Join("data", "config.json") {
		t.Errorf("ConfigFile = %q", cfg.ConfigFile)
	}
	if cfg.IconsDir != filepath.Join("data", "icons") {
		t.Errorf("IconsDir = %q", cfg.IconsDir)
	}
	if cfg.LogLevel != "info" || !cfg.PrettyLog {
		t.Errorf("logging defaults = (%q, %v)", cfg.LogLevel, cfg.PrettyLog)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CRAPDASH_DATA_DIR", "/var/lib/crapdash")
	t.Setenv("CRAPDASH_ICONS_DIR", "/srv/icons")
	t.Setenv("CRAPDASH_LOG_LEVEL", "debug")
	t.Setenv("CRAPDASH_PRETTY_LOG", "false")

	cfg := Load()

	if cfg.ConfigFile != filepath.Join("/var/lib/crapdash", "config.json") {
		t.Errorf("ConfigFile = %q, want it under the data dir", cfg.ConfigFile)
	}
	if cfg.IconsDir != "/srv/icons" {
		t.Errorf("IconsDir = %q, want the explicit override", cfg.IconsDir)
	}
	if cfg.LogLevel != "debug" || cfg.PrettyLog {
		t.Errorf("logging = (%q, %v)", cfg.LogLevel, cfg.PrettyLog)
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_GETENV", "value")
	if got := getenv("TEST_GETENV", "def"); got != "value" {
		t.Errorf("getenv() = %q, want value", got)
	}
	if got := getenv("TEST_GETENV_MISSING", "def"); got != "def" {
		t.Errorf("getenv() = %q, want default", got)
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      bool
		expected bool
	}{
		{name: "true value", value: "true", set: true, def: false, expected: true},
		{name: "false value", value: "false", set: true, def: true, expected: false},
		{name: "numeric one", value: "1", set: true, def: false, expected: true},
		{name: "invalid falls back", value: "banana", set: true, def: true, expected: true},
		{name: "unset falls back", set: false, def: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_MUST_BOOL", tt.value)
			}
			if got := mustBool("TEST_MUST_BOOL", tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}
