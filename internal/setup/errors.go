package setup

import "errors"

var (
	// ErrUnsupportedOS is returned by a Windows-only command started on
	// another operating system.
	ErrUnsupportedOS = errors.New("unsupported operating system")

	// ErrResolvePaths is returned when the config file or the local script
	// location cannot be determined.
	ErrResolvePaths = errors.New("failed to resolve setup paths")

	// ErrUnhandled wraps a panic recovered during the run.
	ErrUnhandled = errors.New("unhandled error during setup")
)
