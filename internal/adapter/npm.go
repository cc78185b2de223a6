package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/MKhiriev/desktop-commander-setup/internal/logger"
)

// npmNotFoundCode is printed by npm when the registry has no such package.
const npmNotFoundCode = "E404"

type npmRegistryProbe struct {
	binary string

	logger *logger.Logger
}

// NewNPMRegistryProbe constructs a [RegistryProbe] that runs
// "<binary> view <package> version" and inspects the result.
func NewNPMRegistryProbe(binary string, logger *logger.Logger) RegistryProbe {
	return &npmRegistryProbe{binary: binary, logger: logger}
}

// IsPublished implements [RegistryProbe]. A zero exit status with a version
// on stdout means published. An E404 failure means the registry confirmed the
// package is absent. Any other failure, including ctx expiry, wraps
// [ErrProbeFailed].
func (p *npmRegistryProbe) IsPublished(ctx context.Context, packageName string) (bool, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.binary, "view", packageName, "version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, fmt.Errorf("%w: npm view %s: %w", ErrProbeFailed, packageName, ctxErr)
		}
		if strings.Contains(stderr.String(), npmNotFoundCode) || strings.Contains(stdout.String(), npmNotFoundCode) {
			p.logger.Debug().Str("package", packageName).Msg("npm registry has no such package")
			return false, nil
		}
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return false, fmt.Errorf("%w: npm view %s: %w: %s", ErrProbeFailed, packageName, err, detail)
		}
		return false, fmt.Errorf("%w: npm view %s: %w", ErrProbeFailed, packageName, err)
	}

	version := strings.TrimSpace(stdout.String())
	p.logger.Debug().Str("package", packageName).Str("version", version).Msg("npm view finished")

	return version != "", nil
}
