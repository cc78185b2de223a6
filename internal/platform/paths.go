// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package platform resolves the OS-dependent facts the setup commands need:
// where the desktop application keeps its config file, where the setup binary
// lives, whether it was started from a registry package and where the
// bundled server script sits.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// ConfigFileName is the desktop application config file name.
	ConfigFileName = "claude_desktop_config.json"

	// AppDirName is the per-user application directory name.
	AppDirName = "Claude"

	// AppDataEnv is the Windows variable holding the roaming app-data directory.
	AppDataEnv = "APPDATA"
)

// Environment is the set of OS lookups used to resolve paths.
type Environment struct {
	// GOOS is the operating system family, as in runtime.GOOS.
	GOOS string

	// Getenv looks up an environment variable.
	Getenv func(key string) string

	// HomeDir returns the current user's home directory.
	HomeDir func() (string, error)
}

// CurrentEnvironment returns the [Environment] of the running process.
func CurrentEnvironment() Environment {
	return Environment{
		GOOS:    runtime.GOOS,
		Getenv:  os.Getenv,
		HomeDir: os.UserHomeDir,
	}
}

// IsWindows reports whether env describes a Windows host.
func (env Environment) IsWindows() bool {
	return env.GOOS == "windows"
}

// ConfigPath returns the location of the desktop application config file:
//
//	windows: %APPDATA%\Claude\claude_desktop_config.json
//	darwin:  ~/Library/Application Support/Claude/claude_desktop_config.json
//	other:   ~/.config/Claude/claude_desktop_config.json
//
// It fails only when APPDATA (windows) or the home directory is unavailable.
func (env Environment) ConfigPath() (string, error) {
	switch env.GOOS {
	case "windows":
		appData := env.Getenv(AppDataEnv)
		if appData == "" {
			return "", ErrAppDataNotSet
		}
		return filepath.Join(appData, AppDirName, ConfigFileName), nil
	case "darwin":
		home, err := env.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppDirName, ConfigFileName), nil
	default:
		home, err := env.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName, ConfigFileName), nil
	}
}

func (env Environment) homeDir() (string, error) {
	home, err := env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirUnavailable, err)
	}
	if home == "" {
		return "", ErrHomeDirUnavailable
	}

	return home, nil
}
