package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.NOC != "AUS" {
		t.Fatalf("expected default NOC AUS, got %q", cfg.NOC)
	}
	if cfg.Timezone != "Australia/Sydney" {
		t.Fatalf("expected default timezone, got %q", cfg.Timezone)
	}
	if cfg.OutputPath != "index.md" {
		t.Fatalf("expected default output path, got %q", cfg.OutputPath)
	}
	if cfg.RefreshSeconds != 900 {
		t.Fatalf("expected default refresh interval, got %d", cfg.RefreshSeconds)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OLYSCHED_NOC", "NZL")
	t.Setenv("OLYSCHED_TEAM_NAME", "New Zealand")
	t.Setenv("OLYSCHED_REFRESH_SECONDS", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.NOC != "NZL" {
		t.Fatalf("expected NOC NZL, got %q", cfg.NOC)
	}
	if cfg.TeamName != "New Zealand" {
		t.Fatalf("expected overridden team name, got %q", cfg.TeamName)
	}
	if cfg.RefreshSeconds != 60 {
		t.Fatalf("expected refresh 60, got %d", cfg.RefreshSeconds)
	}
	// Untouched fields keep their defaults.
	if cfg.Timezone != "Australia/Sydney" {
		t.Fatalf("expected default timezone, got %q", cfg.Timezone)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "olysched.yaml")
	yaml := "noc: GBR\ntimezone: Europe/London\nflag: \"\U0001F1EC\U0001F1E7\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("OLYSCHED_CONFIG", path)
	t.Setenv("OLYSCHED_NOC", "IRL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Env beats file, file beats defaults.
	if cfg.NOC != "IRL" {
		t.Fatalf("expected env NOC IRL, got %q", cfg.NOC)
	}
	if cfg.Timezone != "Europe/London" {
		t.Fatalf("expected file timezone, got %q", cfg.Timezone)
	}
}

func TestLoad_RejectsBadNOC(t *testing.T) {
	t.Setenv("OLYSCHED_NOC", "ZZZZ")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a 4-letter code")
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("OLYSCHED_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
