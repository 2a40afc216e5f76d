package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/dotsmash.yaml
var defaultSettingsYAML []byte

const settingsFile = "dotsmash.yaml"

// Load loads game settings.
// Search order: customPath -> ~/.dotsmash/config.yaml -> ./configs/dotsmash.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	cfg := DefaultSettings()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Найденный, но битый файл — ошибка, а не тихий откат к значениям по умолчанию
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return DefaultSettings(), fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	localPath := filepath.Join("configs", settingsFile)
	if data, err := os.ReadFile(localPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultSettings(), fmt.Errorf("failed to parse config %s: %w", localPath, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dotsmash", "config.yaml")
}
