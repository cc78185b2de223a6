// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the abstraction used to ask the package registry
// whether the server package has been published.
//
// The primary abstraction is [RegistryProbe], which decouples the setup
// service from the way the registry is reached. The package ships two
// implementations: one that runs the npm CLI ([NewNPMRegistryProbe]) and one
// that queries the registry HTTP API ([NewHTTPRegistryProbe]).
//
// A probe either confirms the answer (true or false with a nil error) or
// reports that it could not tell, in which case the error wraps
// [ErrProbeFailed] so callers can use [errors.Is].
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_probe_mock.go -package=mock

// RegistryProbe checks the package registry for a published package.
type RegistryProbe interface {
	// IsPublished reports whether packageName has a published version.
	// A false result with a nil error means the registry confirmed the
	// package does not exist. A non-nil error wraps [ErrProbeFailed] and
	// means the answer is unknown.
	IsPublished(ctx context.Context, packageName string) (bool, error)
}
