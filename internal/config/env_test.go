// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"DC_SETUP_CONFIG": "/path/to/settings.json",

		"DC_SETUP_CLAUDE_CONFIG_PATH": "/tmp/claude.json",
		"DC_SETUP_CLAUDE_SERVER_NAME": "commander",

		"DC_SETUP_PACKAGE_NAME":        "@scope/pkg",
		"DC_SETUP_PACKAGE_SCRIPT_PATH": "/opt/pkg/dist/index.js",
		"DC_SETUP_PACKAGE_PACKAGED":    "true",

		"DC_SETUP_REGISTRY_METHOD":     "http",
		"DC_SETUP_REGISTRY_URL":        "http://localhost:4873",
		"DC_SETUP_REGISTRY_NPM_BINARY": "/usr/bin/npm",
		"DC_SETUP_REGISTRY_TIMEOUT":    "5s",

		"DC_SETUP_LOG_FILE":   "/var/log/setup.log",
		"DC_SETUP_LOG_FORMAT": "text",

		"DC_SETUP_RUN_BACKUP": "true",
		"DC_SETUP_RUN_STRICT": "true",
	})

	// Act
	cfg := &SetupConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/settings.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/claude.json", cfg.Claude.ConfigPath)
	assert.Equal(t, "commander", cfg.Claude.ServerName)
	assert.Equal(t, "@scope/pkg", cfg.Package.Name)
	assert.Equal(t, "/opt/pkg/dist/index.js", cfg.Package.ScriptPath)
	assert.Equal(t, PackagedTrue, cfg.Package.Packaged)
	assert.Equal(t, RegistryMethodHTTP, cfg.Registry.Method)
	assert.Equal(t, "http://localhost:4873", cfg.Registry.URL)
	assert.Equal(t, "/usr/bin/npm", cfg.Registry.NPMBinary)
	assert.Equal(t, 5*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, "/var/log/setup.log", cfg.Log.File)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
	assert.True(t, cfg.Run.Backup)
	assert.True(t, cfg.Run.Strict)
}

func TestParseEnv_UnprefixedIgnored(t *testing.T) {
	t.Setenv("PACKAGE_NAME", "unprefixed")

	cfg := &SetupConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Package.Name)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("DC_SETUP_RUN_BACKUP", "maybe")

	err := parseEnv(&SetupConfig{})
	assert.Error(t, err)
}
