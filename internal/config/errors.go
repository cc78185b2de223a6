package config

import "errors"

// Validation errors returned by [SetupConfig.validate] when a settings group
// is incomplete or invalid.
var (
	// ErrInvalidClaudeConfigs indicates invalid target settings
	// (for example, an empty server name).
	ErrInvalidClaudeConfigs = errors.New("invalid claude configuration")
	// ErrInvalidPackageConfigs indicates invalid package settings
	// (for example, an empty package name or an unknown packaged mode).
	ErrInvalidPackageConfigs = errors.New("invalid package configuration")
	// ErrInvalidRegistryConfigs indicates invalid registry probe settings
	// (for example, an unknown probe method or a non-positive timeout).
	ErrInvalidRegistryConfigs = errors.New("invalid registry configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown console format).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
