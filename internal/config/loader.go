package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSet loads Set configuration.
// Search order: customPath -> ~/.setgame/configs/set.yaml -> ./configs/set.yaml -> embedded default
// Files are decoded over the defaults, so partial files only override what they name.
func LoadSet(customPath string) (SetConfig, error) {
	cfg := DefaultSetConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validated(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("set.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "set.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultSetConfig()
	if err := yaml.Unmarshal(defaultSetYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultSetConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (SetConfig, bool) {
	cfg := DefaultSetConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

func validated(cfg SetConfig, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".setgame", "configs", filename)
}
