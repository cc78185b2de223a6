package adapter

import "errors"

var (
	// ErrProbeFailed means the registry could not be queried and publication
	// status is unknown.
	ErrProbeFailed = errors.New("registry probe failed")

	// ErrUnknownProbeMethod is returned by [NewRegistryProbe] for an
	// unsupported method name.
	ErrUnknownProbeMethod = errors.New("unknown registry probe method")

	// ErrNotFound means the registry answered 404 for the package.
	ErrNotFound = errors.New("not found")
)
