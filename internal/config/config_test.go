package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `
haltTimeoutMillis: 500
formValues:
  userName: "Ada"
  age: 30
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HaltTimeoutMillis != 500 {
		t.Errorf("HaltTimeoutMillis = %d, want 500", cfg.HaltTimeoutMillis)
	}
	if cfg.FormValues["userName"] != "Ada" {
		t.Errorf("FormValues[userName] = %v, want Ada", cfg.FormValues["userName"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load: expected error for missing file, got nil")
	}
}

func TestHaltDeadlineZeroNeverFires(t *testing.T) {
	cfg := &Config{}
	should := cfg.HaltDeadline()
	if should() {
		t.Error("HaltDeadline with zero timeout fired immediately")
	}
}

func TestHaltDeadlineNilConfig(t *testing.T) {
	var cfg *Config
	should := cfg.HaltDeadline()
	if should() {
		t.Error("HaltDeadline on nil config fired immediately")
	}
}

func TestHaltDeadlineElapsed(t *testing.T) {
	cfg := &Config{HaltTimeoutMillis: 1}
	should := cfg.HaltDeadline()
	time.Sleep(2 * time.Millisecond)
	if !should() {
		t.Error("HaltDeadline did not fire after timeout elapsed")
	}
}
