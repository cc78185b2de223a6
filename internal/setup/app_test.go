package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/desktop-commander-setup/internal/app"
	"github.com/MKhiriev/desktop-commander-setup/internal/config"
	"github.com/MKhiriev/desktop-commander-setup/internal/logger"
	"github.com/MKhiriev/desktop-commander-setup/internal/mock"
	"github.com/MKhiriev/desktop-commander-setup/internal/platform"
	"github.com/MKhiriev/desktop-commander-setup/internal/service"
	"github.com/MKhiriev/desktop-commander-setup/internal/store"
	"github.com/MKhiriev/desktop-commander-setup/models"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func linuxEnv(home string) platform.Environment {
	return platform.Environment{
		GOOS:    "linux",
		Getenv:  func(string) string { return "" },
		HomeDir: func() (string, error) { return home, nil },
	}
}

func windowsEnv(appData string) platform.Environment {
	return platform.Environment{
		GOOS:    "windows",
		Getenv:  func(key string) string { return map[string]string{platform.AppDataEnv: appData}[key] },
		HomeDir: func() (string, error) { return "", nil },
	}
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var v map[string]any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

// ── Windows-only guard ───────────────────────────────────────────────────────

func TestRun_WindowsOnlyRefusesOtherOS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var logs bytes.Buffer
	cfg := config.WindowsDefaults()

	a := NewApp(&cfg, Deps{
		Variant:     "Windows",
		WindowsOnly: true,
		Env:         linuxEnv(t.TempDir()),
		Storage:     mock.NewMockDocumentStorage(ctrl),
		Probe:       mock.NewMockRegistryProbe(ctrl),
	}, logger.New(&logs))

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedOS)
	assert.Contains(t, logs.String(), app.MsgWindowsOnly)
}

// ── lenient run ──────────────────────────────────────────────────────────────

func TestRun_LenientCreatesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := t.TempDir()
	binDir := t.TempDir()
	var logs, console bytes.Buffer

	cfg := config.ServerDefaults()
	a := NewApp(&cfg, Deps{
		Variant:    "cross-platform",
		Env:        linuxEnv(home),
		Executable: filepath.Join(binDir, "setup-claude-server"),
		Storage:    store.NewDocumentFileStorage(logger.Nop()),
		Probe:      mock.NewMockRegistryProbe(ctrl),
		Console:    &console,
		BuildInfo:  models.NewAppBuildInfo("v0.1.0", "", ""),
	}, logger.New(&logs))

	require.NoError(t, a.Run(context.Background()))

	configPath := filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
	doc := readJSON(t, configPath)
	assert.Contains(t, doc, models.ServerConfigKey)

	entry := doc[models.MCPServersKey].(map[string]any)["desktopCommander"].(map[string]any)
	assert.Equal(t, models.LocalCommand, entry["command"])
	assert.Equal(t, []any{filepath.Join(binDir, "dist", "index.js")}, entry["args"])

	out := logs.String()
	assert.Contains(t, out, app.MsgDefaultConfigCreated)
	assert.Contains(t, out, app.MsgSetupCompleted)
	assert.Contains(t, out, app.MsgServersAvailable)
	assert.Contains(t, out, "v0.1.0")
	assert.Empty(t, console.String(), "json format prints no boxes")
}

func TestRun_PackagedEntryUsesRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := t.TempDir()
	probe := mock.NewMockRegistryProbe(ctrl)
	probe.EXPECT().IsPublished(gomock.Any(), config.DefaultPackageName).Return(true, nil)

	cfg := config.ServerDefaults()
	a := NewApp(&cfg, Deps{
		Env:        linuxEnv(home),
		Executable: filepath.Join(home, "node_modules", "desktop-commander", "setup-claude-server"),
		Storage:    store.NewDocumentFileStorage(logger.Nop()),
		Probe:      probe,
	}, logger.Nop())

	require.NoError(t, a.Run(context.Background()))

	doc := readJSON(t, filepath.Join(home, ".config", "Claude", "claude_desktop_config.json"))
	entry := doc[models.MCPServersKey].(map[string]any)["desktopCommander"].(map[string]any)
	assert.Equal(t, models.PackagedCommand, entry["command"])
	assert.Equal(t, []any{config.DefaultPackageName}, entry["args"])
}

func TestRun_ExplicitOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"keep":"me"}`), 0o644))
	scriptPath := filepath.Join(dir, "server", "index.js")

	cfg := config.ServerDefaults()
	cfg.Claude.ConfigPath = configPath
	cfg.Claude.ServerName = "dc"
	cfg.Package.ScriptPath = scriptPath
	cfg.Package.Packaged = config.PackagedFalse

	a := NewApp(&cfg, Deps{
		Env:     windowsEnv(""),
		Storage: store.NewDocumentFileStorage(logger.Nop()),
		Probe:   mock.NewMockRegistryProbe(ctrl),
	}, logger.Nop())

	require.NoError(t, a.Run(context.Background()))

	doc := readJSON(t, configPath)
	assert.Equal(t, "me", doc["keep"])
	entry := doc[models.MCPServersKey].(map[string]any)["dc"].(map[string]any)
	assert.Equal(t, []any{scriptPath}, entry["args"])
}

func TestRun_MissingAppData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.WindowsDefaults()
	a := NewApp(&cfg, Deps{
		WindowsOnly: true,
		Env:         windowsEnv(""),
		Executable:  filepath.Join(t.TempDir(), "setup.exe"),
		Storage:     mock.NewMockDocumentStorage(ctrl),
		Probe:       mock.NewMockRegistryProbe(ctrl),
	}, logger.Nop())

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, ErrResolvePaths)
	assert.ErrorIs(t, err, platform.ErrAppDataNotSet)
}

func TestRun_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.ServerDefaults()
	a := NewApp(&cfg, Deps{
		Env:     linuxEnv(t.TempDir()),
		Storage: mock.NewMockDocumentStorage(ctrl),
		Probe:   mock.NewMockRegistryProbe(ctrl),
	}, logger.Nop())

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, ErrResolvePaths)
	assert.ErrorIs(t, err, platform.ErrExecutableUnavailable)
}

// ── strict run ───────────────────────────────────────────────────────────────

func TestRun_StrictMissingConfigPrintsHints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appData := t.TempDir()
	var logs bytes.Buffer

	cfg := config.WindowsDefaults()
	a := NewApp(&cfg, Deps{
		Variant:     "Windows",
		WindowsOnly: true,
		Env:         windowsEnv(appData),
		Executable:  filepath.Join(t.TempDir(), "setup.exe"),
		Storage:     store.NewDocumentFileStorage(logger.Nop()),
		Probe:       mock.NewMockRegistryProbe(ctrl),
	}, logger.New(&logs))

	err := a.Run(context.Background())
	require.ErrorIs(t, err, service.ErrConfigNotFound)

	out := logs.String()
	assert.Contains(t, out, app.MsgInstallClaude)
	assert.Contains(t, out, "DC_SETUP_CLAUDE_CONFIG_PATH")

	entries, readErr := os.ReadDir(appData)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRun_StrictSuccessPrintsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appData := t.TempDir()
	configPath := filepath.Join(appData, "Claude", "claude_desktop_config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, os.WriteFile(configPath, []byte(`{"mcpServers":{}}`), 0o644))

	var logs, console bytes.Buffer
	cfg := config.WindowsDefaults()
	a := NewApp(&cfg, Deps{
		Variant:     "Windows",
		WindowsOnly: true,
		Env:         windowsEnv(appData),
		Executable:  filepath.Join(t.TempDir(), "setup.exe"),
		Storage:     store.NewDocumentFileStorage(logger.Nop()),
		Probe:       mock.NewMockRegistryProbe(ctrl),
		Console:     &console,
	}, logger.New(&logs))

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, logs.String(), app.MsgCustomizeDirectories)
	assert.Contains(t, logs.String(), "Created backup of Claude config at")
	assert.Contains(t, console.String(), "Desktop Commander setup")
	assert.Contains(t, console.String(), "-bk-")
}

func TestRun_StrictWriteFailureOffersManualApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockDocumentStorage(ctrl)
	clip := &fakeClipboard{}
	var logs, console bytes.Buffer

	configPath := filepath.Join("C:", "Users", "u", "AppData", "Roaming", "Claude", "claude_desktop_config.json")
	cfg := config.WindowsDefaults()
	cfg.Claude.ConfigPath = configPath

	storage.EXPECT().Exists(gomock.Any(), configPath).Return(true, nil)
	storage.EXPECT().Backup(gomock.Any(), configPath, gomock.Any()).Return(configPath+".bk", nil)
	storage.EXPECT().Read(gomock.Any(), configPath).Return([]byte(`{"theme":"dark"}`), nil)
	storage.EXPECT().Write(gomock.Any(), configPath, gomock.Any()).Return(store.ErrWriteDocument)

	a := NewApp(&cfg, Deps{
		WindowsOnly: true,
		Env:         windowsEnv(`C:\Users\u\AppData\Roaming`),
		Executable:  filepath.Join(t.TempDir(), "setup.exe"),
		Storage:     storage,
		Probe:       mock.NewMockRegistryProbe(ctrl),
		Clipboard:   clip,
		Console:     &console,
	}, logger.New(&logs))

	err := a.Run(context.Background())
	require.ErrorIs(t, err, service.ErrWriteFailed)

	out := logs.String()
	assert.Contains(t, out, app.MsgCheckWritePermissions)
	assert.Contains(t, out, "You can manually add the configuration to")
	assert.Contains(t, out, app.MsgCopiedToClipboard)

	var copied map[string]any
	require.NoError(t, json.Unmarshal([]byte(clip.text), &copied))
	assert.Equal(t, "dark", copied["theme"])
	assert.Contains(t, copied, models.MCPServersKey)

	assert.Contains(t, console.String(), "Apply manually")
}

func TestRun_ClipboardFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockDocumentStorage(ctrl)
	var logs bytes.Buffer

	cfg := config.WindowsDefaults()
	cfg.Claude.ConfigPath = "cfg.json"

	storage.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil)
	storage.EXPECT().Backup(gomock.Any(), gomock.Any(), gomock.Any()).Return("bk.json", nil)
	storage.EXPECT().Read(gomock.Any(), gomock.Any()).Return([]byte(`{}`), nil)
	storage.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrWriteDocument)

	a := NewApp(&cfg, Deps{
		WindowsOnly: true,
		Env:         windowsEnv(`C:\AppData`),
		Executable:  filepath.Join(t.TempDir(), "setup.exe"),
		Storage:     storage,
		Probe:       mock.NewMockRegistryProbe(ctrl),
		Clipboard:   &fakeClipboard{err: fmt.Errorf("no clipboard")},
	}, logger.New(&logs))

	err := a.Run(context.Background())
	require.ErrorIs(t, err, service.ErrWriteFailed)
	assert.NotContains(t, logs.String(), app.MsgCopiedToClipboard)
	assert.Contains(t, logs.String(), "You can manually add the configuration to")
}

// ── panic recovery ───────────────────────────────────────────────────────────

func TestRun_RecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := mock.NewMockRegistryProbe(ctrl)
	probe.EXPECT().IsPublished(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string) (bool, error) { panic("registry exploded") },
	)

	var logs bytes.Buffer
	cfg := config.ServerDefaults()
	cfg.Package.Packaged = config.PackagedTrue

	a := NewApp(&cfg, Deps{
		Env:        linuxEnv(t.TempDir()),
		Executable: filepath.Join(t.TempDir(), "setup"),
		Storage:    store.NewDocumentFileStorage(logger.Nop()),
		Probe:      probe,
	}, logger.New(&logs))

	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrUnhandled)
	assert.Contains(t, err.Error(), "registry exploded")
	assert.Contains(t, logs.String(), "Unhandled error during setup: registry exploded")
}
