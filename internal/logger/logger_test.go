package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}

// TestNewSetupLogger_JSONConsole verifies that JSON console records carry the
// type/timestamp/message fields.
func TestNewSetupLogger_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	l := NewSetupLogger(Options{Role: "setup", RunID: "run-1", Console: &buf, Format: FormatJSON})
	defer l.Close()

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["type"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "setup", entry["role"])
	assert.Equal(t, "run-1", entry["run"])

	ts, ok := entry["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(TimeFormat, ts)
	assert.NoError(t, err)
}

// TestNewSetupLogger_JSONConsole_ErrorType verifies that errors are flagged
// with type "error".
func TestNewSetupLogger_JSONConsole_ErrorType(t *testing.T) {
	var buf bytes.Buffer
	l := NewSetupLogger(Options{Console: &buf, Format: FormatJSON})
	defer l.Close()

	l.Error().Msg("bad")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["type"])
}

// TestNewSetupLogger_JSONConsole_OnlyInfoAndError verifies that debug
// records never reach the JSON console, so every line is typed "info" or
// "error".
func TestNewSetupLogger_JSONConsole_OnlyInfoAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewSetupLogger(Options{Role: "setup", Console: &buf, Format: FormatJSON})
	defer l.Close()

	l.Debug().Any("config", map[string]string{"path": "x"}).Msg("received configs")
	l.Info().Msg("starting")
	l.Debug().Msg("config file written")
	l.Error().Msg("failed")
	l.Info().Msg("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Contains(t, []any{"info", "error"}, entry["type"], line)
		assert.NotContains(t, entry, "config")
	}
}

// TestNewSetupLogger_FileSkipsDebug verifies the file receives the same
// levels as the console.
func TestNewSetupLogger_FileSkipsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")
	var buf bytes.Buffer
	l := NewSetupLogger(Options{FilePath: path, Console: &buf, Format: FormatText})
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")
	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], " - shown"), lines[0])
	assert.NotContains(t, buf.String(), "hidden")
}

// TestNewSetupLogger_TextConsole verifies plain text console rendering.
func TestNewSetupLogger_TextConsole(t *testing.T) {
	var buf bytes.Buffer
	l := NewSetupLogger(Options{Role: "setup", RunID: "r", Console: &buf, Format: FormatText})
	defer l.Close()

	l.Info().Msg("all good")
	l.Error().Msg("went wrong")

	out := buf.String()
	assert.Contains(t, out, "all good\n")
	assert.Contains(t, out, "ERROR: went wrong\n")
	assert.NotContains(t, out, "{")
	assert.NotContains(t, out, "role=")
}

// TestNewSetupLogger_FileAppends verifies that records are appended to the
// log file across logger instances.
func TestNewSetupLogger_FileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")

	for _, msg := range []string{"first", "second"} {
		var buf bytes.Buffer
		l := NewSetupLogger(Options{FilePath: path, Console: &buf, Format: FormatJSON})
		l.Info().Msg(msg)
		require.NoError(t, l.Close())
	}

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " - first"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " - second"), lines[1])
}

// TestNewSetupLogger_FileErrorPrefix verifies the ERROR marker in the file.
func TestNewSetupLogger_FileErrorPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")
	var buf bytes.Buffer
	l := NewSetupLogger(Options{FilePath: path, Console: &buf, Format: FormatText})
	l.Error().Msg("cannot write")
	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], " - ERROR: cannot write")

	ts := strings.SplitN(lines[0], " ", 2)[0]
	_, err := time.Parse(TimeFormat, ts)
	assert.NoError(t, err)
}

// TestNewSetupLogger_FileUnavailable verifies the console-only fallback.
func TestNewSetupLogger_FileUnavailable(t *testing.T) {
	var console, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing-dir", "setup.log")

	l := NewSetupLogger(Options{FilePath: path, Console: &console, Stderr: &stderr, Format: FormatJSON})
	defer l.Close()
	l.Info().Msg("still logged")

	assert.Contains(t, console.String(), "still logged")

	var notice map[string]any
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &notice))
	assert.Equal(t, "error", notice["type"])
	assert.Contains(t, notice["message"], "Failed to write to log file")
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
	assert.NoError(t, l.Close())
}

// TestNew_WritesJSON verifies the buffer logger used by other packages' tests.
func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Error().Err(errors.New("boom")).Msg("failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "failed", entry["message"])
	assert.Equal(t, "boom", entry["error"])
}
