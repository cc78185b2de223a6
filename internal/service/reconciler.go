// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/desktop-commander-setup/internal/adapter"
	"github.com/MKhiriev/desktop-commander-setup/internal/logger"
	"github.com/MKhiriev/desktop-commander-setup/internal/store"
	"github.com/MKhiriev/desktop-commander-setup/models"
)

type reconciler struct {
	opts    ReconcileOptions
	storage store.DocumentStorage
	probe   adapter.RegistryProbe
	now     func() time.Time

	logger *logger.Logger
}

// NewReconciler validates opts and returns a [Reconciler] that works on
// storage and asks probe about package publication.
func NewReconciler(opts ReconcileOptions, storage store.DocumentStorage, probe adapter.RegistryProbe, logger *logger.Logger) (Reconciler, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &reconciler{
		opts:    opts,
		storage: storage,
		probe:   probe,
		now:     time.Now,
		logger:  logger,
	}, nil
}

// Reconcile implements [Reconciler].
func (r *reconciler) Reconcile(ctx context.Context) (models.ReconcileResult, error) {
	result := models.ReconcileResult{
		ConfigPath: r.opts.ConfigPath,
		ServerName: r.opts.ServerName,
	}

	bootstrapped, err := r.ensureDocument(ctx)
	if err != nil {
		return result, err
	}
	result.Bootstrapped = bootstrapped

	if r.opts.Backup {
		backupPath, err := r.storage.Backup(ctx, r.opts.ConfigPath, r.now())
		if err != nil {
			return result, fmt.Errorf("%w: %w", ErrBackupFailed, err)
		}
		result.BackupPath = backupPath
		r.logger.Info().Msgf("Created backup of Claude config at: %s", backupPath)
	}

	data, err := r.storage.Read(ctx, r.opts.ConfigPath)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	r.logger.Info().Msg("Successfully read Claude configuration")

	doc, err := models.ParseConfigDocument(data)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	r.logger.Info().Msg("Successfully parsed Claude configuration")

	if !doc.HasServers() {
		r.logger.Info().Msgf("Added %s section to configuration", models.MCPServersKey)
	}

	descriptor, source := r.decideLaunch(ctx)
	switch source {
	case models.LaunchSourcePackaged:
		r.logger.Info().Msg("Configuring to use published npm package")
	default:
		r.logger.Info().Msgf("Configuring to use local script at: %s", r.opts.ScriptPath)
	}
	result.Descriptor = descriptor
	result.Source = source

	if err = doc.SetServer(r.opts.ServerName, descriptor); err != nil {
		return result, fmt.Errorf("%w: %w", ErrMergeFailed, err)
	}
	r.logger.Info().Msgf("Added %s to %s configuration", r.opts.ServerName, models.MCPServersKey)

	encoded, err := doc.Encode()
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrMergeFailed, err)
	}
	result.Document = encoded

	if err = r.storage.Write(ctx, r.opts.ConfigPath, encoded); err != nil {
		return result, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	r.logger.Info().Msgf("Successfully updated Claude configuration at: %s", r.opts.ConfigPath)

	return result, nil
}

// ensureDocument reports whether the default document had to be created.
// In strict mode a missing file is an error and nothing is created.
func (r *reconciler) ensureDocument(ctx context.Context) (bool, error) {
	exists, err := r.storage.Exists(ctx, r.opts.ConfigPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if exists {
		return false, nil
	}

	if r.opts.Strict {
		return false, fmt.Errorf("%w at: %s", ErrConfigNotFound, r.opts.ConfigPath)
	}

	r.logger.Info().Msgf("Claude config file not found at: %s", r.opts.ConfigPath)
	r.logger.Info().Msg("Creating default config file...")

	doc, err := models.NewDefaultDocument(r.opts.GOOS)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBootstrapFailed, err)
	}
	data, err := doc.Encode()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBootstrapFailed, err)
	}

	err = r.storage.Create(ctx, r.opts.ConfigPath, data)
	if errors.Is(err, store.ErrDocumentExists) {
		// created by someone else in the meantime
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBootstrapFailed, err)
	}

	r.logger.Info().Msg("Default config file created.")
	return true, nil
}
