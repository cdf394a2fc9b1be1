package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in every search location.
const FileName = "bird.yaml"

// LoadBird loads the bird configuration.
// Search order: customPath -> ~/.bird/configs/bird.yaml -> ./configs/bird.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it
// wants to change. A custom path that cannot be read or parsed is an error;
// broken files in the other locations are skipped.
func LoadBird(customPath string) (BirdConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BirdConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBird(data)
		if err != nil {
			return BirdConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBird(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parseBird(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := parseBird(defaultBirdYAML)
	if err != nil {
		return DefaultBirdConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBird decodes YAML over the built-in defaults.
func parseBird(data []byte) (BirdConfig, error) {
	cfg := DefaultBirdConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BirdConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bird", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg BirdConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
