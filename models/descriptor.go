// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Launch commands written into the desktop application config.
const (
	// PackagedCommand launches a server through its published registry package.
	PackagedCommand = "npx"

	// LocalCommand launches a server from a script on the local filesystem.
	LocalCommand = "node"
)

// LaunchSource tells which form of [ServerLaunchDescriptor] was selected.
type LaunchSource string

const (
	// LaunchSourcePackaged means the descriptor points at the registry package.
	LaunchSourcePackaged LaunchSource = "packaged"

	// LaunchSourceLocal means the descriptor points at the bundled local script.
	LaunchSourceLocal LaunchSource = "local"
)

// ServerLaunchDescriptor describes how the desktop application invokes an
// MCP server process.
type ServerLaunchDescriptor struct {
	// Command is the executable to run (e.g. "npx", "node").
	Command string `json:"command"`

	// Args are passed to Command in order.
	Args []string `json:"args"`
}

// NewPackagedDescriptor returns the descriptor that runs packageName via npx.
func NewPackagedDescriptor(packageName string) ServerLaunchDescriptor {
	return ServerLaunchDescriptor{
		Command: PackagedCommand,
		Args:    []string{packageName},
	}
}

// NewLocalDescriptor returns the descriptor that runs scriptPath with node.
// scriptPath is expected to be absolute.
func NewLocalDescriptor(scriptPath string) ServerLaunchDescriptor {
	return ServerLaunchDescriptor{
		Command: LocalCommand,
		Args:    []string{scriptPath},
	}
}

// NewShellDescriptor returns the platform shell invocation used by the
// default config document: "cmd.exe /c" on windows, "/bin/sh -c" elsewhere.
func NewShellDescriptor(goos string) ServerLaunchDescriptor {
	if goos == "windows" {
		return ServerLaunchDescriptor{Command: "cmd.exe", Args: []string{"/c"}}
	}

	return ServerLaunchDescriptor{Command: "/bin/sh", Args: []string{"-c"}}
}

// Valid reports whether the descriptor has a command and a non-nil args list.
func (d ServerLaunchDescriptor) Valid() bool {
	return d.Command != "" && d.Args != nil
}
