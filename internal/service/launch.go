package service

import (
	"context"

	"github.com/MKhiriev/desktop-commander-setup/models"
)

// decideLaunch picks the launch descriptor. The packaged form is used only
// when the setup runs from an installed package and the registry confirms the
// package is published; everything else falls back to the local script.
//
// The registry is not queried for a local entry point since the answer could
// not change the outcome. A probe error is logged and treated as "not
// published".
func (r *reconciler) decideLaunch(ctx context.Context) (models.ServerLaunchDescriptor, models.LaunchSource) {
	local := models.NewLocalDescriptor(r.opts.ScriptPath)

	if !r.opts.PackagedEntry {
		r.logger.Debug().Msg("setup runs from a local checkout, registry not queried")
		return local, models.LaunchSourceLocal
	}

	probeCtx := ctx
	if r.opts.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, r.opts.ProbeTimeout)
		defer cancel()
	}

	published, err := r.probe.IsPublished(probeCtx, r.opts.PackageName)
	if err != nil {
		r.logger.Info().Err(err).
			Str("package", r.opts.PackageName).
			Msg("Could not determine whether the package is published, falling back to the local script")
		return local, models.LaunchSourceLocal
	}

	if !published {
		r.logger.Debug().Str("package", r.opts.PackageName).Msg("package is not published")
		return local, models.LaunchSourceLocal
	}

	return models.NewPackagedDescriptor(r.opts.PackageName), models.LaunchSourcePackaged
}
