// Command setup-claude-server registers Desktop Commander in the Claude
// Desktop config on any platform. A missing config file is created.
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
		Name:        "setup-claude-server",
		Variant:     "cross-platform",
		LogFileName: "setup.log",
		Defaults:    config.ServerDefaults(),
	}

	os.Exit(cmd.Main(os.Args[1:], models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
}
