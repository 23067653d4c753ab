package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the tool's settings, resolved from flags, environment, and
// the config file (in that order of precedence).
type Config struct {
	Remote  string `mapstructure:"remote"`
	Color   string `mapstructure:"color"`
	Pattern string `mapstructure:"pattern"`
	SkipFix bool   `mapstructure:"skip_fix"`
}

const (
	DefaultRemote     = "origin"
	DefaultColor      = "auto"
	DefaultConfigName = ".gfc"
)

// InitConfig loads the config file, creating a default one in the home
// directory on first run.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("remote", DefaultRemote)
	viper.SetDefault("color", DefaultColor)
	viper.SetDefault("pattern", "")
	viper.SetDefault("skip_fix", false)

	viper.SetEnvPrefix("GFC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return writeDefaultConfig(cfgFile)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func writeDefaultConfig(cfgFile string) error {
	configPath := cfgFile
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultConfigName+".yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfig returns the resolved configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Set stores one key and persists the config file.
func Set(key string, value any) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}
