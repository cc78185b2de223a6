package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MKhiriev/desktop-commander-setup/internal/adapter"
	"github.com/MKhiriev/desktop-commander-setup/internal/app"
	"github.com/MKhiriev/desktop-commander-setup/internal/config"
	"github.com/MKhiriev/desktop-commander-setup/internal/logger"
	"github.com/MKhiriev/desktop-commander-setup/internal/platform"
	"github.com/MKhiriev/desktop-commander-setup/internal/service"
	"github.com/MKhiriev/desktop-commander-setup/internal/store"
	"github.com/MKhiriev/desktop-commander-setup/internal/ui"
	"github.com/MKhiriev/desktop-commander-setup/internal/utils"
	"github.com/MKhiriev/desktop-commander-setup/models"
)

// Deps are the collaborators of an [App]. Storage, Probe and Env are
// required; the rest may be left zero.
type Deps struct {
	// Variant is the human name of the command, e.g. "Windows".
	Variant string

	// WindowsOnly makes the run fail on any other operating system.
	WindowsOnly bool

	// Env resolves the config path and tells the operating system.
	Env platform.Environment

	// Executable is the absolute path of the running setup binary.
	Executable string

	Storage   store.DocumentStorage
	Probe     adapter.RegistryProbe
	Clipboard utils.Clipboard

	// Console receives the boxed summaries of the plain-text format.
	Console io.Writer

	BuildInfo models.AppBuildInfo
}

// App runs one setup.
type App struct {
	cfg  *config.SetupConfig
	deps Deps

	logger *logger.Logger
}

// NewApp constructs an [App] from loaded settings and its collaborators.
func NewApp(cfg *config.SetupConfig, deps Deps, logger *logger.Logger) *App {
	return &App{cfg: cfg, deps: deps, logger: logger}
}

// Run performs the setup and returns the fatal error, if any, after it has
// been logged together with its operator hints. A panic inside the run is
// recovered and returned as [ErrUnhandled].
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Msgf(app.MsgUnhandledError, r)
			err = fmt.Errorf("%w: %v", ErrUnhandled, r)
		}
	}()

	a.logger.Info().Fields(a.deps.BuildInfo.Fields()).Msgf(app.MsgStartingSetup, a.deps.Variant)

	if a.deps.WindowsOnly && !a.deps.Env.IsWindows() {
		a.logger.Error().Str("os", a.deps.Env.GOOS).Msg(app.MsgWindowsOnly)
		return ErrUnsupportedOS
	}

	opts, err := a.reconcileOptions()
	if err != nil {
		a.logger.Error().Msg(err.Error())
		return err
	}

	reconciler, err := service.NewReconciler(opts, a.deps.Storage, a.deps.Probe, a.logger)
	if err != nil {
		a.logger.Error().Msg(err.Error())
		return err
	}

	result, err := reconciler.Reconcile(ctx)
	if err != nil {
		a.reportFailure(err, result)
		return err
	}

	a.reportSuccess(result)
	return nil
}

// reconcileOptions resolves the paths and the packaged entry mode.
func (a *App) reconcileOptions() (service.ReconcileOptions, error) {
	configPath := a.cfg.Claude.ConfigPath
	if configPath == "" {
		var err error
		if configPath, err = a.deps.Env.ConfigPath(); err != nil {
			return service.ReconcileOptions{}, fmt.Errorf("%w: %w", ErrResolvePaths, err)
		}
	}

	var (
		scriptPath string
		err        error
	)
	switch {
	case a.cfg.Package.ScriptPath != "":
		scriptPath, err = filepath.Abs(a.cfg.Package.ScriptPath)
	case a.deps.Executable != "":
		scriptPath, err = platform.LocalScriptPath(a.deps.Executable)
	default:
		err = platform.ErrExecutableUnavailable
	}
	if err != nil {
		return service.ReconcileOptions{}, fmt.Errorf("%w: %w", ErrResolvePaths, err)
	}

	return service.ReconcileOptions{
		ConfigPath:    configPath,
		ServerName:    a.cfg.Claude.ServerName,
		PackageName:   a.cfg.Package.Name,
		ScriptPath:    scriptPath,
		PackagedEntry: a.packagedEntry(),
		Strict:        a.cfg.Run.Strict,
		Backup:        a.cfg.Run.Backup,
		GOOS:          a.deps.Env.GOOS,
		ProbeTimeout:  a.cfg.Registry.Timeout,
	}, nil
}

func (a *App) packagedEntry() bool {
	switch a.cfg.Package.Packaged {
	case config.PackagedTrue:
		return true
	case config.PackagedFalse:
		return false
	default:
		return a.deps.Executable != "" && platform.IsPackagedEntry(a.deps.Executable)
	}
}

func (a *App) reportFailure(err error, result models.ReconcileResult) {
	a.logger.Error().Msg(err.Error())
	for _, hint := range app.Hints(err) {
		a.logger.Info().Msg(hint)
	}

	if !errors.Is(err, service.ErrWriteFailed) || !a.cfg.Run.Strict || len(result.Document) == 0 {
		return
	}

	a.logger.Info().Msgf(app.MsgManualApply, result.ConfigPath)
	a.logger.Info().Msg(string(result.Document))

	if a.deps.Clipboard != nil {
		if clipErr := a.deps.Clipboard.WriteAll(string(result.Document)); clipErr != nil {
			a.logger.Debug().Err(clipErr).Msg("clipboard unavailable")
		} else {
			a.logger.Info().Msg(app.MsgCopiedToClipboard)
		}
	}

	a.render(ui.RenderManualApply(result.ConfigPath, result.Document))
}

func (a *App) reportSuccess(result models.ReconcileResult) {
	if result.Bootstrapped {
		a.logger.Info().Msg(app.MsgDefaultConfigCreated)
	}

	a.logger.Info().Msg(app.MsgSetupCompleted)
	a.logger.Info().Msgf(app.MsgConfigurationLocation, result.ConfigPath)
	a.logger.Info().Msg(app.MsgRestartClaude)
	if a.cfg.Run.Strict {
		a.logger.Info().Msg(app.MsgCustomizeDirectories)
	} else {
		a.logger.Info().Msg(app.MsgServersAvailable)
	}

	a.render(ui.RenderSummary(result, a.deps.BuildInfo))
}

// render prints a box on the plain-text console only, so that JSON console
// output stays one record per line.
func (a *App) render(box string) {
	if a.deps.Console == nil || a.cfg.Log.Format != config.LogFormatText {
		return
	}

	fmt.Fprintln(a.deps.Console, box)
}
