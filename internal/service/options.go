package service

import (
	"fmt"
	"path/filepath"
	"time"
)

// ReconcileOptions are the environment facts and switches of one run.
type ReconcileOptions struct {
	// ConfigPath is the config file to reconcile.
	ConfigPath string

	// ServerName is the key set under "mcpServers".
	ServerName string

	// PackageName is the registry package used by the packaged launch form.
	PackageName string

	// ScriptPath is the absolute path of the local entry script used by the
	// local launch form.
	ScriptPath string

	// PackagedEntry is true when the setup itself runs from an installed
	// registry package.
	PackagedEntry bool

	// Strict makes a missing config file fatal instead of creating it.
	Strict bool

	// Backup copies the config file before it is modified.
	Backup bool

	// GOOS selects the shell descriptor of the default document.
	GOOS string

	// ProbeTimeout bounds the registry probe. Zero means no extra bound.
	ProbeTimeout time.Duration
}

func (o ReconcileOptions) validate() error {
	if o.ConfigPath == "" {
		return fmt.Errorf("%w: empty config path", ErrInvalidOptions)
	}
	if o.ServerName == "" {
		return fmt.Errorf("%w: empty server name", ErrInvalidOptions)
	}
	if o.PackageName == "" {
		return fmt.Errorf("%w: empty package name", ErrInvalidOptions)
	}
	if !filepath.IsAbs(o.ScriptPath) {
		return fmt.Errorf("%w: script path %q is not absolute", ErrInvalidOptions, o.ScriptPath)
	}
	if o.ProbeTimeout < 0 {
		return fmt.Errorf("%w: negative probe timeout", ErrInvalidOptions)
	}

	return nil
}
