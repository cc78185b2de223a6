// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// EnvPrefix is prepended to every environment variable read by [parseEnv].
const EnvPrefix = "DC_SETUP_"

// Packaged entry point modes for [Package.Packaged].
const (
	PackagedAuto  = "auto"
	PackagedTrue  = "true"
	PackagedFalse = "false"
)

// Registry probe methods for [Registry.Method].
const (
	RegistryMethodNPM  = "npm"
	RegistryMethodHTTP = "http"
)

// Console log formats for [Log.Format].
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults shared by both command variants.
const (
	DefaultServerName      = "desktopCommander"
	DefaultPackageName     = "@jasondsmith72/desktop-commander"
	DefaultRegistryURL     = "https://registry.npmjs.org"
	DefaultNPMBinary       = "npm"
	DefaultRegistryTimeout = 30 * time.Second
)

// SetupConfig is the top-level settings container for a setup run. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON settings file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type SetupConfig struct {
	// Claude holds the target config file settings.
	Claude Claude `envPrefix:"CLAUDE_"`

	// Package holds the settings of the server package being registered.
	Package Package `envPrefix:"PACKAGE_"`

	// Registry holds the settings of the package registry probe.
	Registry Registry `envPrefix:"REGISTRY_"`

	// Log holds log file and console settings.
	Log Log `envPrefix:"LOG_"`

	// Run holds the behaviour switches that distinguish the two variants.
	Run Run `envPrefix:"RUN_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// Populated via DC_SETUP_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Claude holds settings of the desktop application config file.
type Claude struct {
	// ConfigPath overrides the OS-derived config file location.
	// Env: DC_SETUP_CLAUDE_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`

	// ServerName is the key set under "mcpServers".
	// Env: DC_SETUP_CLAUDE_SERVER_NAME
	ServerName string `env:"SERVER_NAME"`
}

// Package holds settings of the server package.
type Package struct {
	// Name is the registry package name used by the packaged launch form.
	// Env: DC_SETUP_PACKAGE_NAME
	Name string `env:"NAME"`

	// ScriptPath overrides the local entry script location.
	// Env: DC_SETUP_PACKAGE_SCRIPT_PATH
	ScriptPath string `env:"SCRIPT_PATH"`

	// Packaged tells whether the setup runs from the registry package:
	// "auto" (detect from the executable path), "true" or "false".
	// Env: DC_SETUP_PACKAGE_PACKAGED
	Packaged string `env:"PACKAGED"`
}

// Registry holds settings of the package registry probe.
type Registry struct {
	// Method selects the probe: "npm" runs the npm CLI, "http" queries the
	// registry API directly.
	// Env: DC_SETUP_REGISTRY_METHOD
	Method string `env:"METHOD"`

	// URL is the registry base URL used by the "http" method.
	// Env: DC_SETUP_REGISTRY_URL
	URL string `env:"URL"`

	// NPMBinary is the npm executable used by the "npm" method.
	// Env: DC_SETUP_REGISTRY_NPM_BINARY
	NPMBinary string `env:"NPM_BINARY"`

	// Timeout bounds a single probe (e.g. "30s").
	// Env: DC_SETUP_REGISTRY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// File overrides the log file location (default: next to the binary).
	// Env: DC_SETUP_LOG_FILE
	File string `env:"FILE"`

	// Format is the console format: "json" or "text".
	// Env: DC_SETUP_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// Run holds the variant switches.
type Run struct {
	// Backup copies the config file before mutating it.
	// Env: DC_SETUP_RUN_BACKUP
	Backup bool `env:"BACKUP"`

	// Strict fails when the config file is missing instead of creating it,
	// and dumps the intended content when writing fails.
	// Env: DC_SETUP_RUN_STRICT
	Strict bool `env:"STRICT"`
}

// ServerDefaults returns the defaults of the cross-platform setup command:
// missing config files are created, no backup is made and the console gets
// JSON lines.
func ServerDefaults() SetupConfig {
	cfg := commonDefaults()
	cfg.Log.Format = LogFormatJSON

	return cfg
}

// WindowsDefaults returns the defaults of the Windows setup command: a
// missing config file is fatal, a backup is made and the console gets plain
// text.
func WindowsDefaults() SetupConfig {
	cfg := commonDefaults()
	cfg.Log.Format = LogFormatText
	cfg.Run = Run{Backup: true, Strict: true}

	return cfg
}

func commonDefaults() SetupConfig {
	return SetupConfig{
		Claude: Claude{ServerName: DefaultServerName},
		Package: Package{
			Name:     DefaultPackageName,
			Packaged: PackagedAuto,
		},
		Registry: Registry{
			Method:    RegistryMethodNPM,
			URL:       DefaultRegistryURL,
			NPMBinary: DefaultNPMBinary,
			Timeout:   DefaultRegistryTimeout,
		},
	}
}

// Load loads, merges, and validates the settings from all available
// sources, parsing args as the flags of the command called name:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. defaults for every field left empty
//
// Returns a fully populated *SetupConfig or an error if any source fails to
// load or the final settings fail validation.
func Load(name string, args []string, defaults SetupConfig) (*SetupConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(name, args).
		withJSON().
		withDefaults(defaults).
		build()
}
