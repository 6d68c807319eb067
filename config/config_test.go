package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDefaults(t *testing.T) {
	d := DefaultDefaults()
	if d.Multiplication.KaratsubaThreshold != 24 {
		t.Errorf("expected KaratsubaThreshold=24, got %d", d.Multiplication.KaratsubaThreshold)
	}
	if d.Multiplication.Toom3Threshold != 192 {
		t.Errorf("expected Toom3Threshold=192, got %d", d.Multiplication.Toom3Threshold)
	}
	if d.Float.DefaultPrecisionBase10 != 34 {
		t.Errorf("expected DefaultPrecisionBase10=34, got %d", d.Float.DefaultPrecisionBase10)
	}
	if d.Float.DefaultPrecisionBase2 != 113 {
		t.Errorf("expected DefaultPrecisionBase2=113, got %d", d.Float.DefaultPrecisionBase2)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Fatal("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "dashu.toml" {
		t.Errorf("expected path to end with dashu.toml, got %s", path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	d := DefaultDefaults()
	d.Multiplication.KaratsubaThreshold = 40
	d.Multiplication.Toom3Threshold = 300
	d.Float.DefaultPrecisionBase2 = 256

	if err := d.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded.Multiplication.KaratsubaThreshold != 40 {
		t.Errorf("expected KaratsubaThreshold=40, got %d", loaded.Multiplication.KaratsubaThreshold)
	}
	if loaded.Multiplication.Toom3Threshold != 300 {
		t.Errorf("expected Toom3Threshold=300, got %d", loaded.Multiplication.Toom3Threshold)
	}
	if loaded.Float.DefaultPrecisionBase2 != 256 {
		t.Errorf("expected DefaultPrecisionBase2=256, got %d", loaded.Float.DefaultPrecisionBase2)
	}
}

func TestLoadNonExistentFallsBackToDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	d, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on a missing file: %v", err)
	}
	if d.Multiplication.KaratsubaThreshold != 24 {
		t.Error("expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[multiplication]
karatsuba_threshold = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error when loading invalid TOML")
	}
}

func TestSaveCreatesMissingDirectories(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "dashu.toml")

	d := DefaultDefaults()
	if err := d.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}
}
