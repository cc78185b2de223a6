package adapter

import (
	"fmt"

	"github.com/MKhiriev/desktop-commander-setup/internal/config"
	"github.com/MKhiriev/desktop-commander-setup/internal/logger"
)

// NewRegistryProbe builds the [RegistryProbe] selected by cfg.Method.
func NewRegistryProbe(cfg config.Registry, logger *logger.Logger) (RegistryProbe, error) {
	switch cfg.Method {
	case config.RegistryMethodNPM:
		return NewNPMRegistryProbe(cfg.NPMBinary, logger), nil
	case config.RegistryMethodHTTP:
		return NewHTTPRegistryProbe(cfg.URL, cfg.Timeout, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProbeMethod, cfg.Method)
	}
}
