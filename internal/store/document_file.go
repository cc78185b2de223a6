// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/desktop-commander-setup/internal/logger"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// documentFileStorage is the filesystem implementation of [DocumentStorage].
// It takes no locks: concurrent writers from other processes are not
// coordinated.
type documentFileStorage struct {
	logger *logger.Logger
}

// NewDocumentFileStorage constructs a [DocumentStorage] backed by the local
// filesystem.
func NewDocumentFileStorage(logger *logger.Logger) DocumentStorage {
	return &documentFileStorage{logger: logger}
}

// Exists implements [DocumentStorage]. A path that exists but is not a
// regular file yields [ErrNotRegularFile].
func (s *documentFileStorage) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	return true, nil
}

// Create implements [DocumentStorage].
func (s *documentFileStorage) Create(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrCreateDocument, dir, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrDocumentExists, path)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDocument, err)
	}

	if err = writeAndClose(f, data); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %w", ErrCreateDocument, err)
	}

	s.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("config file created")
	return nil
}

// Read implements [DocumentStorage].
func (s *documentFileStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	return data, nil
}

// Write implements [DocumentStorage]. The file keeps its permission bits
// when it already exists.
func (s *documentFileStorage) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	s.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("config file written")
	return nil
}

// Backup implements [DocumentStorage]. When the timestamped name is already
// taken (two runs within the same minute) a numeric suffix is appended
// rather than overwriting the older backup.
func (s *documentFileStorage) Backup(ctx context.Context, path string, at time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrBackupDocument, path, err)
	}

	perm := os.FileMode(filePerm)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	base := BackupPath(path, at)
	for attempt := 0; ; attempt++ {
		target := numberedPath(base, attempt)

		f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) && attempt < maxBackupAttempts {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrBackupDocument, err)
		}

		if err = writeAndClose(f, data); err != nil {
			_ = os.Remove(target)
			return "", fmt.Errorf("%w: %w", ErrBackupDocument, err)
		}

		s.logger.Debug().Str("path", target).Msg("config backup written")
		return target, nil
	}
}

func writeAndClose(f *os.File, data []byte) error {
	_, err := f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	return err
}
