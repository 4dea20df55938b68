package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"ROOMCHAIN_SEED":        "12345",
		"ROOMCHAIN_GRID_SIZE":   "64",
		"ROOMCHAIN_PATH_LENGTH": "20",
		"ROOMCHAIN_OFFSHOOTS":   "4",
		"ROOMCHAIN_PREVIEW":     "true",
		"ROOMCHAIN_STORE_DIR":   "/tmp/expeditions",
		"UNRELATED":             "x",
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}

	if cfg.Seed != 12345 || cfg.GridSize != 64 || cfg.PathLength != 20 || cfg.NumOffshoots != 4 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if !cfg.Preview || cfg.StoreDir != "/tmp/expeditions" {
		t.Errorf("Unexpected preview/store settings: %+v", cfg)
	}
	if cfg.OffshootDepth != Default().OffshootDepth {
		t.Error("Unset keys should keep their defaults")
	}
}

func TestFromMapRejectsBadValues(t *testing.T) {
	tests := []map[string]string{
		{"ROOMCHAIN_SEED": "abc"},
		{"ROOMCHAIN_GRID_SIZE": "0"},
		{"ROOMCHAIN_PATH_LENGTH": "-1"},
		{"ROOMCHAIN_PREVIEW": "maybe"},
		{"ROOMCHAIN_PATH_ATTEMPTS": "0"},
	}
	for _, vars := range tests {
		if _, err := FromMap(vars); err == nil {
			t.Errorf("Expected an error for %v", vars)
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "ROOMCHAIN_PATH_LENGTH=7\nROOMCHAIN_OFFSHOOT_DEPTH=5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROOMCHAIN_OFFSHOOT_DEPTH", "2")

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PathLength != 7 {
		t.Errorf("Expected path length 7 from the file, got %d", cfg.PathLength)
	}
	if cfg.OffshootDepth != 2 {
		t.Errorf("Environment should override the file, got depth %d", cfg.OffshootDepth)
	}
}
