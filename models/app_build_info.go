// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// buildInfoNA replaces build metadata that was not injected at link time.
const buildInfoNA = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the setup
// binaries.
//
// Values are injected by linker flags (-X main.buildVersion=...) and logged
// at the start of every run for diagnostics.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values become "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return orNA(a.buildVersion)
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return orNA(a.buildDate)
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return orNA(a.buildCommit)
}

// Fields returns the metadata as log fields.
func (a AppBuildInfo) Fields() map[string]any {
	return map[string]any{
		"version": a.BuildVersion(),
		"date":    a.BuildDate(),
		"commit":  a.BuildCommit(),
	}
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return buildInfoNA
	}
	return v
}
