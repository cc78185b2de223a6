package setup

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/MKhiriev/desktop-commander-setup/internal/adapter"
	"github.com/MKhiriev/desktop-commander-setup/internal/config"
	"github.com/MKhiriev/desktop-commander-setup/internal/logger"
	"github.com/MKhiriev/desktop-commander-setup/internal/platform"
	"github.com/MKhiriev/desktop-commander-setup/internal/store"
	"github.com/MKhiriev/desktop-commander-setup/internal/utils"
	"github.com/MKhiriev/desktop-commander-setup/models"
)

// Command describes one setup binary.
type Command struct {
	// Name is the program name used for flags and the "role" log field.
	Name string

	// Variant is passed to [Deps.Variant].
	Variant string

	// LogFileName is the default log file created next to the binary.
	LogFileName string

	// WindowsOnly is passed to [Deps.WindowsOnly].
	WindowsOnly bool

	// Defaults are the settings of the variant.
	Defaults config.SetupConfig
}

// Main wires the production dependencies, runs the setup and returns the
// process exit code: 0 on success or -help, 1 otherwise.
func (c Command) Main(args []string, info models.AppBuildInfo) int {
	exe, exeErr := platform.Executable()

	dotEnvPaths := []string{config.DotEnvFileName}
	if exeErr == nil {
		dotEnvPaths = append(dotEnvPaths, filepath.Join(filepath.Dir(exe), config.DotEnvFileName))
	}
	if err := config.LoadDotEnv(dotEnvPaths...); err != nil {
		logger.New(os.Stderr).Error().Err(err).Msg("error getting configs")
		return 1
	}

	cfg, err := config.Load(c.Name, args, c.Defaults)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.New(os.Stderr).Error().Err(err).Msg("error getting configs")
		return 1
	}

	logFile := cfg.Log.File
	if logFile == "" && exeErr == nil {
		logFile = platform.LogFilePath(exe, c.LogFileName)
	}

	log := logger.NewSetupLogger(logger.Options{
		Role:     c.Name,
		RunID:    utils.NewRunID(),
		FilePath: logFile,
		Format:   cfg.Log.Format,
	})
	defer closeQuietly(log)

	if exeErr != nil {
		log.Info().Err(exeErr).Msg("Could not locate the setup binary")
	}

	probe, err := adapter.NewRegistryProbe(cfg.Registry, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating registry probe")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := NewApp(cfg, Deps{
		Variant:     c.Variant,
		WindowsOnly: c.WindowsOnly,
		Env:         platform.CurrentEnvironment(),
		Executable:  exe,
		Storage:     store.NewDocumentFileStorage(log),
		Probe:       probe,
		Clipboard:   utils.NewSystemClipboard(),
		Console:     os.Stdout,
		BuildInfo:   info,
	}, log)

	if err = a.Run(ctx); err != nil {
		return 1
	}

	return 0
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
	}
}
