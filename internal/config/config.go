// Package config loads the reader configuration from the standard XDG
// config path. Every field has a default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the reader configuration from config.toml
type Config struct {
	Data struct {
		DatasetPath  string `toml:"dataset_path"`  // Verse dataset JSON
		FootnotePath string `toml:"footnote_path"` // Footnote cleanup rules JSON
	} `toml:"data"`
	Audio struct {
		Root string `toml:"root"` // Narration output tree
		WPM  int    `toml:"wpm"`  // Reading speed for the no-audio delay
	} `toml:"audio"`
	UI struct {
		Theme string `toml:"theme"`
	} `toml:"ui"`
}

const defaultWPM = 180

// configDir resolves the XDG config directory.
func configDir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "leseraum"), nil
}

// LoadConfig loads configuration from the standard XDG config path with
// sensible defaults
func LoadConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(dir, "config.toml")

	config := &Config{}
	config.Audio.WPM = defaultWPM

	// Read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		configData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse TOML config, merging with defaults
		if err := toml.Unmarshal(configData, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if config.Audio.WPM <= 0 {
		config.Audio.WPM = defaultWPM
	}

	return config, nil
}

// DatasetCandidates lists the dataset paths to try, configured path first.
func (c *Config) DatasetCandidates() []string {
	var out []string
	if c.Data.DatasetPath != "" {
		out = append(out, c.Data.DatasetPath)
	}
	if dir, err := configDir(); err == nil {
		out = append(out, filepath.Join(dir, "bibel.json"))
	}
	out = append(out, "bibel.json")
	return out
}

// FootnoteCandidates lists the footnote rule paths to try.
func (c *Config) FootnoteCandidates() []string {
	var out []string
	if c.Data.FootnotePath != "" {
		out = append(out, c.Data.FootnotePath)
	}
	if dir, err := configDir(); err == nil {
		out = append(out, filepath.Join(dir, "footnotes.json"))
	}
	out = append(out, "footnotes.json")
	return out
}

// StorePath returns where the annotation database lives. The directory is
// created on demand; an empty return means persistence is unavailable and
// the session runs in memory.
func (c *Config) StorePath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}
	return filepath.Join(dir, "leseraum.db")
}

// AudioRoot returns the configured narration root, which may be empty.
func (c *Config) AudioRoot() string {
	return c.Audio.Root
}

// ReadingWPM returns the words-per-minute pace for verses without audio.
func (c *Config) ReadingWPM() int {
	return c.Audio.WPM
}
