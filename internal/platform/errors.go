package platform

import "errors"

var (
	// ErrAppDataNotSet is returned on windows when APPDATA is empty.
	ErrAppDataNotSet = errors.New("APPDATA environment variable is not set")

	// ErrHomeDirUnavailable is returned when the user's home directory
	// cannot be determined.
	ErrHomeDirUnavailable = errors.New("user home directory is unavailable")

	// ErrExecutableUnavailable is returned when the path of the running
	// binary cannot be determined.
	ErrExecutableUnavailable = errors.New("cannot determine executable path")
)
