package store

import "errors"

// Sentinel errors returned by [DocumentStorage] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when the config file does not exist.
	ErrDocumentNotFound = errors.New("config file not found")

	// ErrDocumentExists is returned by Create when the file already exists.
	ErrDocumentExists = errors.New("config file already exists")

	// ErrNotRegularFile is returned when the path names a directory or
	// another non-regular file.
	ErrNotRegularFile = errors.New("config path is not a regular file")

	// ErrCreateDocument is returned when a new config file or its parent
	// directories cannot be created.
	ErrCreateDocument = errors.New("failed to create config file")

	// ErrReadDocument is returned when the config file exists but cannot be
	// read.
	ErrReadDocument = errors.New("failed to read config file")

	// ErrWriteDocument is returned when the config file cannot be written.
	ErrWriteDocument = errors.New("failed to write config file")

	// ErrBackupDocument is returned when the backup copy cannot be made.
	ErrBackupDocument = errors.New("failed to back up config file")
)
