package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "memory.yaml"

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.memylon/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
//
// Files are decoded over the defaults, so they only need the keys they change.
func LoadMemory(customPath string) (MemoryConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return MemoryConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg MemoryConfig
	if err := yaml.Unmarshal(defaultMemoryYAML, &cfg); err != nil {
		return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (MemoryConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MemoryConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return MemoryConfig{}, false
	}
	return cfg, true
}

func parse(data []byte) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MemoryConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memylon", "configs", filename)
}
