// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// normalize lowercases the enumerated settings so that every source accepts
// them in any case.
func (cfg *SetupConfig) normalize() {
	cfg.Package.Packaged = strings.ToLower(strings.TrimSpace(cfg.Package.Packaged))
	cfg.Registry.Method = strings.ToLower(strings.TrimSpace(cfg.Registry.Method))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
}

// validate checks that the final merged [SetupConfig] satisfies all
// invariants before it is used.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *SetupConfig) validate() error {
	if cfg.Claude.ServerName == "" {
		return fmt.Errorf("%w: empty server name", ErrInvalidClaudeConfigs)
	}

	if cfg.Package.Name == "" {
		return fmt.Errorf("%w: empty package name", ErrInvalidPackageConfigs)
	}

	switch cfg.Package.Packaged {
	case PackagedAuto, PackagedTrue, PackagedFalse:
	default:
		return fmt.Errorf("%w: unknown packaged mode %q", ErrInvalidPackageConfigs, cfg.Package.Packaged)
	}

	switch cfg.Registry.Method {
	case RegistryMethodNPM:
		if cfg.Registry.NPMBinary == "" {
			return fmt.Errorf("%w: empty npm binary", ErrInvalidRegistryConfigs)
		}
	case RegistryMethodHTTP:
		if cfg.Registry.URL == "" {
			return fmt.Errorf("%w: empty registry url", ErrInvalidRegistryConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown method %q", ErrInvalidRegistryConfigs, cfg.Registry.Method)
	}

	if cfg.Registry.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidRegistryConfigs)
	}

	switch cfg.Log.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	return nil
}
