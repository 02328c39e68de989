package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"timetracker/internal/core/model"
	"timetracker/internal/platform"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkSeconds  int `yaml:"work_seconds"`
	RelaxSeconds int `yaml:"relax_seconds"`
}

// SettingsDir returns the per-application config directory.
func SettingsDir(service platform.Service, appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// LoadSettings reads the phase durations from dir.
// If the file does not exist, default durations are returned.
func LoadSettings(dir string) (model.PomodoroConfig, error) {
	config := model.DefaultPomodoroConfig()

	rawData, err := os.ReadFile(filepath.Join(dir, settingsFileName))
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

	if fileData.WorkSeconds > 0 {
		config.Work = time.Duration(fileData.WorkSeconds) * time.Second
	}
	if fileData.RelaxSeconds > 0 {
		config.Relax = time.Duration(fileData.RelaxSeconds) * time.Second
	}
	return config, nil
}

// SaveSettings writes the phase durations to dir.
func SaveSettings(dir string, config model.PomodoroConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(yamlSettings{
		WorkSeconds:  config.WorkSeconds(),
		RelaxSeconds: config.RelaxSeconds(),
	})
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, settingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// ConfigApplier takes new durations once they are stored.
type ConfigApplier interface {
	UpdateConfig(config model.PomodoroConfig) error
}

// PersistSettings writes config to dir and only then hands it to applier,
// so a failed write leaves the running durations untouched. An empty dir
// skips the write.
func PersistSettings(dir string, config model.PomodoroConfig, applier ConfigApplier) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if dir != "" {
		if err := SaveSettings(dir, config); err != nil {
			return err
		}
	}
	if err := applier.UpdateConfig(config); err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}
	return nil
}
