// Package config persists application-wide preferences for the photopack
// CLI to a small JSON file in the user's home directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/photopack/pkg/pack"
)

// AppConfig holds preferences that persist across CLI invocations.
type AppConfig struct {
	DefaultAlgorithm string   `json:"default_algorithm"` // "guillotine", "shelf", or "maxrects"
	DefaultPreset    string   `json:"default_preset"`    // named PagePreset, see internal/preset
	RecentProjects   []string `json:"recent_projects"`
	Theme            string   `json:"theme"` // "light", "dark", "system" — consumed only by a future UI layer
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultAlgorithm: "maxrects",
		DefaultPreset:    "4x6 borderless",
		RecentProjects:   []string{},
		Theme:            "system",
	}
}

// Algorithm resolves DefaultAlgorithm to a pack.Algorithm, defaulting to
// pack.MaxRects for an empty or unrecognized value.
func (c AppConfig) Algorithm() pack.Algorithm {
	switch c.DefaultAlgorithm {
	case "guillotine":
		return pack.Guillotine
	case "shelf":
		return pack.Shelf
	default:
		return pack.MaxRects
	}
}

// DefaultDir returns ~/.photopack, the directory all durable config and
// presets live in.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".photopack")
}

// DefaultPath returns the default location of the app config file.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.json")
}

// Save persists config to path as indented JSON, creating parent
// directories as needed.
func Save(path string, config AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads an AppConfig from path. A missing file is not an error: it
// yields DefaultAppConfig().
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}
