package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the connection settings the aiq CLI passes to the SDK.
// Sources are merged in ascending precedence: defaults, config file,
// AIQ_* environment variables, command-line flags.
type Config struct {
	BaseURL   string `yaml:"base_url"`
	Org       string `yaml:"org"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// LoadConfig reads the YAML config file at path (or the default location
// when path is empty) and overlays AIQ_* environment variables. A missing
// file is fine; a file that exists but does not parse is an error.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		LogLevel:  "info",
		LogFormat: "text",
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// No config file is a normal state, flags and env still apply
		default:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	overlayEnv(&cfg)
	return cfg, nil
}

// defaultConfigPath resolves ~/.config/aiq/config.yaml, or "" when the home
// directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aiq", "config.yaml")
}

func overlayEnv(cfg *Config) {
	setFromEnv(&cfg.BaseURL, "AIQ_BASE_URL")
	setFromEnv(&cfg.Org, "AIQ_ORG")
	setFromEnv(&cfg.Username, "AIQ_USERNAME")
	setFromEnv(&cfg.Password, "AIQ_PASSWORD")
	setFromEnv(&cfg.LogLevel, "AIQ_LOG_LEVEL")
	setFromEnv(&cfg.LogFormat, "AIQ_LOG_FORMAT")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
