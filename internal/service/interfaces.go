package service

import (
	"context"

	"github.com/MKhiriev/desktop-commander-setup/models"
)

// Reconciler runs one read-merge-write cycle over the config file.
type Reconciler interface {
	// Reconcile ensures the config file exists, backs it up when enabled,
	// sets the managed server entry and writes the file back.
	//
	// The returned result is filled in as far as the run progressed; in
	// particular Document is set whenever encoding succeeded, even if the
	// write then failed. Fatal failures wrap one of the sentinel errors of
	// this package.
	Reconcile(ctx context.Context) (models.ReconcileResult, error)
}
