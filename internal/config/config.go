package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/foundry-tools/foundry/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"

	// EnvFile is the per-project environment file read by LoadProjectEnv.
	EnvFile = ".env"
)

// Keys understood by the CLI.
const (
	KeyDebug     = "debug"
	KeyFormat    = "format"
	KeyOverwrite = "overwrite"
)

// Dir returns the path to the config directory (~/.foundry/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.foundry/config.yaml).
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
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyDebug, false)
	viper.SetDefault(KeyFormat, "json")
	viper.SetDefault(KeyOverwrite, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// LoadProjectEnv reads the .env file in dir into the process environment.
// Variables that are already set keep their value. A missing file is not
// an error.
func LoadProjectEnv(dir string) error {
	path := filepath.Join(dir, EnvFile)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Debug reports whether debug output is enabled through FOUNDRY_DEBUG or
// the config file.
func Debug() bool {
	return viper.GetBool(KeyDebug)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a config value by key as a boolean.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
