package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckDirStatusCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	status := CheckDirStatus(dir)
	if status.Err != nil {
		t.Fatalf("Unexpected error: %v", status.Err)
	}
	if !status.Exists || !status.Writable {
		t.Errorf("Expected an existing writable dir, got %+v", status)
	}
	if !FileExists(dir) {
		t.Error("Directory was not created on disk")
	}
}

func TestSaveTOMLFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	data := struct {
		Name string `toml:"name"`
	}{Name: "typesift"}
	if err := SaveTOMLFile(data, path); err != nil {
		t.Fatalf("SaveTOMLFile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading back: %v", err)
	}
	if len(raw) == 0 {
		t.Error("Expected TOML output, got an empty file")
	}
}
