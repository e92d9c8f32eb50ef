package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Detection.DisabledTypes = []string{"generic_api_key"}
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")
	if err := Write(path, cfg); err != nil {
		t.Fatalf("write config: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("mode = %o, want 600", perm)
	}
	loaded, found, err := Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if !found {
		t.Fatalf("expected config to be found")
	}
	if len(loaded.Detection.DisabledTypes) != 1 || loaded.Detection.DisabledTypes[0] != "generic_api_key" {
		t.Fatalf("disabled_types = %v", loaded.Detection.DisabledTypes)
	}
}

func TestWriteRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 2
	if err := Write(filepath.Join(t.TempDir(), "config.yaml"), cfg); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := Write("", DefaultConfig()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
