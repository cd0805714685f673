package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DefaultDataset string `toml:"default_dataset"`
	Output         string `toml:"output"`
	NoColor        bool   `toml:"no_color"`
}

const (
	appName = "cardquery"

	// DefaultDatasetName is written to a fresh config file
	DefaultDatasetName = "cards"
	// DefaultOutput is the list format used when none is configured
	DefaultOutput = "table"
)

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDatasetLibraryPath returns the directory holding named card documents
func GetDatasetLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "datasets")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file, creating it with defaults when missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := defaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if config.Output == "" {
		config.Output = DefaultOutput
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		DefaultDataset: DefaultDatasetName,
		Output:         DefaultOutput,
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := defaultConfig()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDatasetPath resolves a dataset name from the library, falling back to
// treating it as a file path. "cards" finds <library>/cards.json.
func GetDatasetPath(name string) (string, error) {
	libraryPath := GetDatasetLibraryPath()

	candidates := []string{filepath.Join(libraryPath, name)}
	if !strings.HasSuffix(name, ".json") {
		candidates = append(candidates, filepath.Join(libraryPath, name+".json"))
	}
	candidates = append(candidates, name)

	for _, path := range candidates {
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("dataset not found: %s", name)
}

// GetDefaultDataset returns the default dataset name from config
func GetDefaultDataset() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDataset, nil
}

// SetDefaultDataset sets the default dataset in the config
func SetDefaultDataset(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDataset = name
	return writeConfig(config)
}
