// Package config provides settings loading, merging, and validation for the
// setup commands.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (prefixed with DC_SETUP_)
//  2. Command-line flags
//  3. JSON settings file (-c / -config / DC_SETUP_CONFIG)
//
// Fields left empty by every source are filled from the defaults of the
// command variant ([ServerDefaults] or [WindowsDefaults]) and the result is
// validated. The main entry point is [Load].
package config
