// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Directory names that only appear in the path of a binary installed from
// the package registry (npm installs and the npx cache).
var packagedSegments = []string{"node_modules", "_npx"}

// Executable returns the absolute, symlink-resolved path of the running
// binary.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutableUnavailable, err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Abs(exe)
}

// IsPackagedEntry reports whether exePath lies inside a registry package
// install rather than a local checkout.
func IsPackagedEntry(exePath string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(exePath), "/") {
		for _, packaged := range packagedSegments {
			if segment == packaged {
				return true
			}
		}
	}

	return false
}

// LocalScriptPath returns the absolute path of the server entry script
// bundled next to the setup binary: <dir of exePath>/dist/index.js.
func LocalScriptPath(exePath string) (string, error) {
	return filepath.Abs(filepath.Join(filepath.Dir(exePath), "dist", "index.js"))
}

// LogFilePath returns the path of name next to the setup binary.
func LogFilePath(exePath, name string) string {
	return filepath.Join(filepath.Dir(exePath), name)
}
