// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	NPMPackage  string `yaml:"npm_package"`
	ManifestKey string `yaml:"manifest_key"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "foundry",
			DisplayName: "Foundry",
			Description: "Toolkit that sets up linting, formatting and release automation",
			HomeDir:     ".foundry",
			EnvPrefix:   "FOUNDRY",
			GoModule:    "github.com/foundry-tools/foundry",
			NPMPackage:  "@foundry-tools/foundry",
			ManifestKey: "foundry",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "foundry").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".foundry").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FOUNDRY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// NPMPackage returns the npm package that ships the runtime config presets.
// Generated module-style config files require it.
func NPMPackage() string { load(); return defaults.NPMPackage }

// ManifestKey returns the package.json key holding explicit option overrides.
func ManifestKey() string { load(); return defaults.ManifestKey }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("debug") → "FOUNDRY_DEBUG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
