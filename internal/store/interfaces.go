// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the desktop application config document on the
// local filesystem.
//
// [DocumentStorage] is the only abstraction. It deals in raw bytes: parsing
// and encoding belong to the models package, so that "file unreadable" and
// "file malformed" stay distinct failures for the caller.
package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_storage_mock.go -package=mock

// DocumentStorage reads and writes the config file and its backups.
type DocumentStorage interface {
	// Exists reports whether a regular file exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Create creates any missing parent directories and writes data to a
	// new file at path. It fails with [ErrDocumentExists] if the file is
	// already there.
	Create(ctx context.Context, path string, data []byte) error

	// Read returns the file content. A missing file yields
	// [ErrDocumentNotFound], any other failure [ErrReadDocument].
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the file content. Failures wrap [ErrWriteDocument].
	Write(ctx context.Context, path string, data []byte) error

	// Backup copies the file to a sibling named after [BackupPath] for the
	// given time and returns the backup path. Failures wrap
	// [ErrBackupDocument]; the original file is never modified.
	Backup(ctx context.Context, path string, at time.Time) (string, error)
}
