package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Source   Source   `yaml:"source"`
	Fetch    Fetch    `yaml:"fetch"`
	Analysis Analysis `yaml:"analysis"`
	Output   Output   `yaml:"output"`
	Logging  Logging  `yaml:"logging"`
}

type Source struct {
	StoreURL  string `yaml:"store_url"`
	APIURL    string `yaml:"api_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

type Fetch struct {
	MaxReviews int `yaml:"max_reviews"`
	PageSize   int `yaml:"page_size"`
}

type Analysis struct {
	MinWordLength      int `yaml:"min_word_length"`
	GlobalMinFrequency int `yaml:"global_min_frequency"`
	TitleMinFrequency  int `yaml:"title_min_frequency"`
}

type Output struct {
	DataDir string `yaml:"data_dir"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for reviewpulse.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "reviewpulse")
}

// DataDir returns the XDG data directory for reviewpulse.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "reviewpulse")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/reviewpulse/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'reviewpulse init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Source: Source{
			StoreURL:  "https://store.steampowered.com",
			APIURL:    "https://api.steampowered.com",
			APIKeyEnv: "STEAM_ACCESS_TOKEN",
		},
		Fetch: Fetch{
			MaxReviews: 6000,
			PageSize:   100,
		},
		Analysis: Analysis{
			MinWordLength:      3,
			GlobalMinFrequency: 5,
			TitleMinFrequency:  3,
		},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// GetDataDir returns the effective data directory from config or XDG default.
func (c *Config) GetDataDir() string {
	if c.Output.DataDir != "" {
		return c.Output.DataDir
	}
	return DataDir()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
