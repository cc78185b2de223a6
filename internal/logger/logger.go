// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by the
// setup commands.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// A single *Logger is built in main for the whole run and passed explicitly
// to every component that logs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Console output formats.
const (
	// FormatJSON writes one JSON object per line to the console.
	FormatJSON = "json"

	// FormatText writes plain "message" lines to the console.
	FormatText = "text"
)

// Field names of every log record. They match the records the setup scripts
// have always printed: {"type": "info", "timestamp": "...", "message": "..."}.
const (
	LevelFieldName     = "type"
	TimestampFieldName = "timestamp"
	MessageFieldName   = "message"
)

// TimeFormat is ISO-8601 with milliseconds in UTC.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// OutputLevel is the lowest level written to the console and the log file.
// Records below it are dropped, so every emitted record is flagged either
// "info" or "error".
const OutputLevel = zerolog.InfoLevel

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	closer io.Closer
}

// Options configures [NewSetupLogger].
type Options struct {
	// Role is attached to every record as the "role" field.
	Role string

	// RunID is attached to every record as the "run" field when non-empty.
	RunID string

	// FilePath is the append-only log file. Empty disables file output.
	FilePath string

	// Console receives console output. Defaults to os.Stdout.
	Console io.Writer

	// Format selects the console rendering: [FormatJSON] or [FormatText].
	Format string

	// Stderr receives the notice printed when FilePath cannot be opened.
	// Defaults to os.Stderr.
	Stderr io.Writer
}

// NewSetupLogger constructs the *Logger for one setup run.
//
// Every record goes to the console (JSON lines or plain text depending on
// opts.Format) and to opts.FilePath, where it is appended as
// "<timestamp> - [ERROR: ]<message>". If the file cannot be opened the
// logger keeps working on the console alone and a JSON error record is
// written to opts.Stderr.
//
// Close must be called to release the log file.
func NewSetupLogger(opts Options) *Logger {
	configureGlobals()

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	writers := []io.Writer{filtered(consoleWriter(console, opts.Format))}

	var closer io.Closer
	if opts.FilePath != "" {
		logFile, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, `{"%s":"error","%s":"%s","%s":%q}`+"\n",
				LevelFieldName, TimestampFieldName, time.Now().UTC().Format(TimeFormat),
				MessageFieldName, "Failed to write to log file: "+err.Error())
		} else {
			writers = append(writers, filtered(fileWriter(logFile)))
			closer = logFile
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if opts.Role != "" {
		ctx = ctx.Str("role", opts.Role)
	}
	if opts.RunID != "" {
		ctx = ctx.Str("run", opts.RunID)
	}

	return &Logger{Logger: ctx.Logger(), closer: closer}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// New wraps a zerolog logger writing to w. It is mostly useful in tests that
// need to inspect log records.
func New(w io.Writer) *Logger {
	configureGlobals()
	return &Logger{Logger: zerolog.New(w).With().Timestamp().Logger()}
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.LevelFieldName = LevelFieldName
	zerolog.TimestampFieldName = TimestampFieldName
	zerolog.MessageFieldName = MessageFieldName
	zerolog.TimeFieldFormat = TimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
}

func filtered(w io.Writer) zerolog.LevelWriter {
	return &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: w},
		Level:  OutputLevel,
	}
}

func consoleWriter(w io.Writer, format string) io.Writer {
	if format != FormatText {
		return w
	}

	return zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       true,
		PartsOrder:    []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FieldsExclude: []string{"role", "run"},
		FormatLevel:   formatLevelPrefix,
	}
}

func fileWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: TimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{"role", "run"},
		FormatLevel: func(i any) string {
			if prefix := formatLevelPrefix(i); prefix != "" {
				return "- " + prefix
			}
			return "-"
		},
		FormatTimestamp: func(i any) string {
			return fmt.Sprint(i)
		},
	}
}

// formatLevelPrefix renders "ERROR:" for error-and-above records and nothing
// for the rest.
func formatLevelPrefix(i any) string {
	level, _ := i.(string)
	switch strings.ToLower(level) {
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "ERROR:"
	case zerolog.LevelWarnValue:
		return "WARNING:"
	default:
		return ""
	}
}
