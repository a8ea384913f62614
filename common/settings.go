package common

import (
	"os"
	"path/filepath"

	"github.com/birmacher/ai-agent/logger"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

type Settings struct {
	Provider             string `yaml:"provider"`
	LogLevel             string `yaml:"log_level"`
	APITimeout           int    `yaml:"api_timeout"`
	MaxTokens            int    `yaml:"max_tokens"`
	MaxRetries           int    `yaml:"max_retries"`
	BaseURL              string `yaml:"base_url"`
	ReuseVerboseResponse bool   `yaml:"reuse_verbose_response"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Provider:   ProviderGemini,
		LogLevel:   "warn",
		APITimeout: 60,
	}
}

// SettingsFilenames are looked up in the working directory, in order.
var SettingsFilenames = []string{"ai-agent.yml", "ai-agent.yaml"}

// WithYamlFile returns the default settings overlaid with the first settings
// file found in the working directory or in the user config directory.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	filePath := findSettingsFile()
	if filePath == "" {
		logger.Debug("No settings file found. Using default settings.")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warnf("Failed to read settings file %s: %v", filePath, err)
		return settings
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		logger.Warnf("Failed to parse YAML file %s: %v", filePath, err)
	} else {
		logger.Debugf("Using settings from YAML file: %s", filePath)
	}

	return settings
}

func findSettingsFile() string {
	for _, name := range SettingsFilenames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, "ai-agent", "config.yml")
	if _, err := os.Stat(path); err == nil {
		return path
	}

	return ""
}
