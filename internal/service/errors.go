package service

import "errors"

var (
	ErrInvalidOptions = errors.New("invalid reconcile options")

	ErrConfigNotFound  = errors.New("claude config file not found")
	ErrBootstrapFailed = errors.New("error creating default claude configuration")
	ErrBackupFailed    = errors.New("error creating backup")
	ErrReadFailed      = errors.New("error reading claude configuration")
	ErrParseFailed     = errors.New("error parsing claude configuration")
	ErrMergeFailed     = errors.New("error updating claude configuration")
	ErrWriteFailed     = errors.New("error writing claude configuration")
)
