// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the operator-facing wording shared by both setup
// commands.
//
// All Msg* constants are human-readable strings written to the console and
// the log file. [Hints] maps a fatal error to the follow-up instructions
// printed after it. Keeping them in one place ensures both commands speak
// the same way.
package app

const (
	// MsgStartingSetup opens every run. The argument is the variant name.
	MsgStartingSetup = "Starting %s setup for ClaudeComputerCommander..."

	// MsgWindowsOnly is the fatal message of the Windows command on any
	// other operating system.
	MsgWindowsOnly = "This setup is intended for Windows only."

	// MsgInstallClaude follows a missing config file in strict mode.
	MsgInstallClaude = "Please make sure Claude Desktop is installed and has been run at least once."

	// MsgNonStandardLocation follows a missing config file in strict mode.
	MsgNonStandardLocation = "If Claude is installed in a non-standard location, pass the correct path with -claude-config or DC_SETUP_CLAUDE_CONFIG_PATH."

	// MsgCheckDirPermissions follows a failed backup or bootstrap.
	MsgCheckDirPermissions = "Please make sure you have permissions to write to the Claude config directory."

	// MsgCheckWritePermissions follows a failed write.
	MsgCheckWritePermissions = "Please ensure you have write permissions to the Claude config directory."

	// MsgInvalidJSON follows a parse failure.
	MsgInvalidJSON = "The configuration file appears to be invalid JSON."

	// MsgManualApply introduces the intended document dump. The argument is
	// the config path.
	MsgManualApply = "You can manually add the configuration to %s:"

	// MsgCopiedToClipboard is printed when the intended document was also
	// placed on the clipboard.
	MsgCopiedToClipboard = "The configuration has also been copied to the clipboard."

	// MsgDefaultConfigCreated is printed when the lenient command had to
	// create the config file.
	MsgDefaultConfigCreated = "Default config file created. Please update it with your Claude API credentials."

	// MsgSetupCompleted closes a successful run.
	MsgSetupCompleted = "Setup completed successfully!"

	// MsgRestartClaude tells the operator how to pick up the change.
	MsgRestartClaude = "Please restart Claude Desktop to apply the changes."

	// MsgServersAvailable is printed after MsgRestartClaude.
	MsgServersAvailable = "The servers will be available in Claude's MCP server list."

	// MsgCustomizeDirectories points at further configuration.
	MsgCustomizeDirectories = "You can customize allowed directories by editing the config.json file."

	// MsgConfigurationLocation reports the config path. The argument is the
	// path.
	MsgConfigurationLocation = "Configuration location: %s"

	// MsgUnhandledError is logged for a recovered panic. The argument is the
	// panic value.
	MsgUnhandledError = "Unhandled error during setup: %v"
)
