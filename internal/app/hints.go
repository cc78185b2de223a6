package app

import (
	"errors"

	"github.com/MKhiriev/desktop-commander-setup/internal/service"
)

var errorHintsMap = map[error][]string{
	service.ErrConfigNotFound:  {MsgInstallClaude, MsgNonStandardLocation},
	service.ErrBootstrapFailed: {MsgCheckDirPermissions},
	service.ErrBackupFailed:    {MsgCheckDirPermissions},
	service.ErrParseFailed:     {MsgInvalidJSON},
	service.ErrWriteFailed:     {MsgCheckWritePermissions},
}

// Hints returns the follow-up lines to print after err, or nil when there
// is nothing useful to add.
func Hints(err error) []string {
	for target, hints := range errorHintsMap {
		if errors.Is(err, target) {
			return hints
		}
	}
	return nil
}
