package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/llmtxt-labs/llmtxt/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyOutput      = "output"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyTokenModel  = "token_model"
	KeyServeHost   = "serve.host"
	KeyServePort   = "serve.port"
	KeyMaxUploadMB = "max_upload_mb"
)

// Defaults maps every known key to its built-in value.
var Defaults = map[string]any{
	KeyOutput:      branding.OutputName(),
	KeyLogLevel:    "info",
	KeyLogFormat:   "text",
	KeyTokenModel:  "gpt-4",
	KeyServeHost:   "localhost",
	KeyServePort:   8080,
	KeyMaxUploadMB: 50,
}

// Dir returns the path to the config directory (~/.llmtxt/).
// LLMTXT_HOME overrides the location.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.llmtxt/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for key, value := range Defaults {
		viper.SetDefault(key, value)
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetInt returns an integer config value by key.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// IsKnown reports whether key is one of the documented config keys.
func IsKnown(key string) bool {
	_, ok := Defaults[key]
	return ok
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file and the one being set are written; defaults and
// environment overrides are never persisted.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
