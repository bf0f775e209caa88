package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MIDIConfig selects the input used to step through presets
type MIDIConfig struct {
	PortName string `json:"portName,omitempty"` // substring match, empty = first input
	Channel  int    `json:"channel,omitempty"`  // 1-16, 0 = any
	PrevCC   int    `json:"prevCC"`
	NextCC   int    `json:"nextCC"`
}

// Config is the main configuration structure
type Config struct {
	LibraryRoot     string     `json:"libraryRoot,omitempty"` // empty = auto-detect
	UserLibrary     string     `json:"userLibrary,omitempty"` // empty = ~/Music/Ableton/User Library
	PresetDirs      []string   `json:"presetDirs,omitempty"`
	CustomPresetDir string     `json:"customPresetDir,omitempty"`
	MIDI            MIDIConfig `json:"midi"`
	DebugLog        string     `json:"debugLog,omitempty"`
	Palette         string     `json:"palette,omitempty"` // GIMP .gpl file
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		MIDI: MIDIConfig{
			PrevCC: 1,
			NextCC: 2,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "drumrack"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if not found
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.MIDI.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the channel and controller numbers are in MIDI range
func (m MIDIConfig) Validate() error {
	if m.Channel < 0 || m.Channel > 16 {
		return fmt.Errorf("midi.channel %d out of range 0-16", m.Channel)
	}
	if m.PrevCC < 0 || m.PrevCC > 127 {
		return fmt.Errorf("midi.prevCC %d out of range 0-127", m.PrevCC)
	}
	if m.NextCC < 0 || m.NextCC > 127 {
		return fmt.Errorf("midi.nextCC %d out of range 0-127", m.NextCC)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path
func (c *Config) SaveTo(path string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CustomPresetsDir returns the directory holding custom JSON presets
func (c *Config) CustomPresetsDir() string {
	if c.CustomPresetDir != "" {
		return c.CustomPresetDir
	}
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "presets")
}

// AddPresetDir adds dir to the scan list unless already present
func (c *Config) AddPresetDir(dir string) {
	for _, d := range c.PresetDirs {
		if d == dir {
			return
		}
	}
	c.PresetDirs = append(c.PresetDirs, dir)
}
