package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/studytimer/internal/util"
	"gopkg.in/yaml.v3"
)

// Settings holds user preferences read from settings.yaml.
type Settings struct {
	StartMode     string
	Theme         string
	RecordHistory bool
	ShowChecks    bool
}

type yamlSettings struct {
	StartMode     string `yaml:"start_mode"`
	Theme         string `yaml:"theme"`
	RecordHistory *bool  `yaml:"record_history"`
	ShowChecks    *bool  `yaml:"show_checks"`
}

// DefaultSettings returns the preferences used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		StartMode:     "study",
		Theme:         "default",
		RecordHistory: true,
		ShowChecks:    true,
	}
}

// LoadSettings reads preferences from path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// EnsureSettings loads path, writing the defaults there on first run so the
// file can be edited by hand.
func EnsureSettings(path string) (Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		settings := DefaultSettings()
		return settings, SaveSettings(path, settings)
	}
	return LoadSettings(path)
}

// SaveSettings writes preferences to path, creating its directory.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	record, checks := settings.RecordHistory, settings.ShowChecks
	serialized, err := yaml.Marshal(yamlSettings{
		StartMode:     settings.StartMode,
		Theme:         settings.Theme,
		RecordHistory: &record,
		ShowChecks:    &checks,
	})
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// SettingsPath resolves settings.yaml under the user config dir.
func SettingsPath() string {
	return filepath.Join(util.ConfigDir(AppName), SettingsFileName)
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	switch fileData.StartMode {
	case "study", "workout":
		settings.StartMode = fileData.StartMode
	}
	if fileData.Theme != "" {
		settings.Theme = fileData.Theme
	}
	if fileData.RecordHistory != nil {
		settings.RecordHistory = *fileData.RecordHistory
	}
	if fileData.ShowChecks != nil {
		settings.ShowChecks = *fileData.ShowChecks
	}
}
