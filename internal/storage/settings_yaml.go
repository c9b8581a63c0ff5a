package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paul0314/fitts-experiment/internal/core/model"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Distance *float64 `yaml:"distance,omitempty"`
	Width    *float64 `yaml:"width,omitempty"`
	Trials   *float64 `yaml:"trials,omitempty"`
}

// SettingsPath returns the default settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadFile reads experiment defaults from YAML.
// If the file does not exist, the default configuration is returned. Keys
// missing from the file keep their default value.
func LoadFile(configPath string) (model.Config, error) {
	config := model.DefaultConfig()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&config, fileData)
	return config, nil
}

// SaveFile writes experiment defaults to YAML, creating parent directories.
func SaveFile(configPath string, config model.Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Distance: &config.Distance,
		Width:    &config.Width,
		Trials:   &config.Trials,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// RemoveFile deletes the settings file so the defaults apply again.
func RemoveFile(configPath string) error {
	if err := os.Remove(configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(config *model.Config, fileData yamlSettings) {
	if fileData.Distance != nil {
		config.Distance = *fileData.Distance
	}
	if fileData.Width != nil {
		config.Width = *fileData.Width
	}
	if fileData.Trials != nil {
		config.Trials = *fileData.Trials
	}
}
