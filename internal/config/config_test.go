package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_WithDefaults(t *testing.T) {
	// Test loading config when file doesn't exist - should use defaults
	oldXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", oldXDG)

	// Set to non-existent directory
	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.ReadingWPM() != 180 {
		t.Errorf("Expected default reading pace 180, got %d", config.ReadingWPM())
	}

	if config.AudioRoot() != "" {
		t.Errorf("Expected empty audio root, got %q", config.AudioRoot())
	}

	if config.Data.DatasetPath != "" {
		t.Errorf("Expected empty dataset path, got %q", config.Data.DatasetPath)
	}
}

func TestLoadConfig_WithFile(t *testing.T) {
	oldXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", oldXDG)

	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "leseraum")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}

	configContent := `[data]
dataset_path = "/data/bibel.json"

[audio]
root = "/output/tts"
wpm = 140
`
	configPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Data.DatasetPath != "/data/bibel.json" {
		t.Errorf("Expected configured dataset path, got %q", config.Data.DatasetPath)
	}
	if config.AudioRoot() != "/output/tts" {
		t.Errorf("Expected configured audio root, got %q", config.AudioRoot())
	}
	if config.ReadingWPM() != 140 {
		t.Errorf("Expected configured pace 140, got %d", config.ReadingWPM())
	}
}

func TestLoadConfig_InvalidWPMFallsBack(t *testing.T) {
	oldXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", oldXDG)

	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "leseraum")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}

	configContent := `[audio]
wpm = -5
`
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.ReadingWPM() != 180 {
		t.Errorf("Expected fallback pace 180, got %d", config.ReadingWPM())
	}
}

func TestDatasetCandidates_ConfiguredFirst(t *testing.T) {
	oldXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", oldXDG)

	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	config := &Config{}
	config.Data.DatasetPath = "/data/bibel.json"

	candidates := config.DatasetCandidates()
	if len(candidates) == 0 || candidates[0] != "/data/bibel.json" {
		t.Fatalf("Expected configured path first, got %v", candidates)
	}

	want := filepath.Join(tmpDir, "leseraum", "bibel.json")
	if candidates[1] != want {
		t.Errorf("Expected XDG candidate %q, got %q", want, candidates[1])
	}
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	oldXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", oldXDG)

	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "leseraum")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[audio\nroot ="), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for malformed TOML, got nil")
	}
}
