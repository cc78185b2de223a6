// Command setup-claude-windows registers Desktop Commander in an existing
// Claude Desktop config on Windows, keeping a timestamped backup.
package main

import (
	"os"

	"github.com/MKhiriev/desktop-commander-setup/internal/config"
	"github.com/MKhiriev/desktop-commander-setup/internal/setup"
	"github.com/MKhiriev/desktop-commander-setup/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := setup.Command{
		Name:        "setup-claude-windows",
		Variant:     "Windows",
		LogFileName: "setup-windows.log",
		WindowsOnly: true,
		Defaults:    config.WindowsDefaults(),
	}

	os.Exit(cmd.Main(os.Args[1:], models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
}
