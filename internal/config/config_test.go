// ABOUTME: Tests for config loading, saving, and path expansion.
// ABOUTME: Missing files yield defaults, not errors.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.DataDir != "" || cfg.CurrentUser != "" {
		t.Errorf("defaults not empty: %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rehealth", "config.json")

	cfg := &Config{DataDir: "/tmp/rehealth-data", CurrentUser: "frost"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got.DataDir != cfg.DataDir || got.CurrentUser != cfg.CurrentUser {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom accepted malformed JSON")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if cfg.GetDataDir() == "" {
		t.Error("GetDataDir returned empty default")
	}

	cfg.DataDir = "/opt/rehealth"
	if got := cfg.GetDataDir(); got != "/opt/rehealth" {
		t.Errorf("GetDataDir = %q, want /opt/rehealth", got)
	}
}

func TestOpenStorageCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DataDir: dir}

	db, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dir, "rehealth.db")); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}
