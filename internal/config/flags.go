package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the command-line flags in args.
//
// Flags:
//
//	-c/-config json settings file path
//	-claude-config path of the desktop application config file
//	-server-name key set under "mcpServers"
//	-package registry package name
//	-script local entry script path
//	-packaged packaged entry point: auto, true or false
//	-registry-method registry probe: npm or http
//	-registry-url registry base URL for the http probe
//	-npm npm executable for the npm probe
//	-registry-timeout registry probe timeout (e.g., "30s")
//	-log-file log file path
//	-log-format console log format: json or text
//	-backup back up the config file before changing it
func ParseFlags(name string, args []string) (*SetupConfig, error) {
	var (
		jsonConfigPath  string
		claudeConfig    string
		serverName      string
		packageName     string
		scriptPath      string
		packaged        string
		registryMethod  string
		registryURL     string
		npmBinary       string
		registryTimeout time.Duration
		logFile         string
		logFormat       string
		backup          bool
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&jsonConfigPath, "c", "", "JSON settings file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON settings file path (alias)")
	fs.StringVar(&claudeConfig, "claude-config", "", "Claude Desktop config file path")
	fs.StringVar(&serverName, "server-name", "", "Server name under mcpServers")
	fs.StringVar(&packageName, "package", "", "Registry package name")
	fs.StringVar(&scriptPath, "script", "", "Local server entry script path")
	fs.StringVar(&packaged, "packaged", "", "Packaged entry point: auto, true or false")
	fs.StringVar(&registryMethod, "registry-method", "", "Registry probe: npm or http")
	fs.StringVar(&registryURL, "registry-url", "", "Registry base URL")
	fs.StringVar(&npmBinary, "npm", "", "npm executable")
	fs.DurationVar(&registryTimeout, "registry-timeout", 0, "Registry probe timeout (e.g., 30s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logFormat, "log-format", "", "Console log format: json or text")
	fs.BoolVar(&backup, "backup", false, "Back up the config file before changing it")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &SetupConfig{
		Claude: Claude{
			ConfigPath: claudeConfig,
			ServerName: serverName,
		},
		Package: Package{
			Name:       packageName,
			ScriptPath: scriptPath,
			Packaged:   packaged,
		},
		Registry: Registry{
			Method:    registryMethod,
			URL:       registryURL,
			NPMBinary: npmBinary,
			Timeout:   registryTimeout,
		},
		Log: Log{
			File:   logFile,
			Format: logFormat,
		},
		Run:          Run{Backup: backup},
		JSONFilePath: jsonConfigPath,
	}, nil
}
