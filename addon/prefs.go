package addon

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preferences holds the persisted addon settings, stored as YAML beside the
// host's configuration. Missing or unreadable files fall back to defaults so
// the addon always starts with a usable configuration.
type Preferences struct {
	// ExportDir is the directory scenes export into when the operator has
	// no explicit path. "" means the current working directory.
	ExportDir string `yaml:"export_dir"`

	// RendererPath is the RayCast executable used by auto render.
	RendererPath string `yaml:"renderer_path"`

	// OpenBrowser is the default for the panel's open-browser toggle.
	OpenBrowser bool `yaml:"open_browser"`

	// AutoRender is the default for the panel's auto-render toggle.
	AutoRender bool `yaml:"auto_render"`
}

// DefaultPreferences returns the addon defaults: export into the working
// directory, no renderer configured, both toggles on (matching the panel
// defaults).
//
// Returns:
//   - Preferences: the default preferences
func DefaultPreferences() Preferences {
	return Preferences{
		OpenBrowser: true,
		AutoRender:  true,
	}
}

// LoadPreferences reads preferences from the given YAML file. A missing or
// invalid file is not an error; defaults are returned and the problem is
// logged.
//
// Parameters:
//   - path: the preferences file path
//
// Returns:
//   - Preferences: the loaded preferences, or defaults
func LoadPreferences(path string) Preferences {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Addon] preferences unreadable, using defaults: %v", err)
		}
		return DefaultPreferences()
	}

	// Unmarshal over the defaults so keys absent from the file keep them.
	prefs := DefaultPreferences()
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		log.Printf("[Addon] preferences invalid, using defaults: %v", err)
		return DefaultPreferences()
	}
	return prefs
}

// SavePreferences writes preferences to the given YAML file, creating the
// parent directory if absent.
//
// Parameters:
//   - prefs: the preferences to persist
//   - path: the preferences file path
//
// Returns:
//   - error: error if encoding or writing fails
func SavePreferences(prefs Preferences, path string) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
