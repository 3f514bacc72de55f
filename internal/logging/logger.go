// Package logging provides structured, colorful logging utilities for gns3util,
// ensuring consistent log formatting and visual clarity across every command.
//
// Implements a unified logging interface used by the API client, the command
// handlers and the interactive drill-down workflows. Uses color-coded log
// levels and consistent timestamp formatting.
//
// LOGGING FEATURES:
//   - Color-coded levels: DEBUG (purple), INFO (blue), WARN (yellow), ERROR (red), SUCCESS (green)
//   - Single stderr stream: stdout is reserved for command output (JSON, drill-down blocks)
//   - Flexible output: Configurable log levels and output suppression for CLI use
//
// Command output is never written through this package. Logs describe what
// the CLI is doing; stdout carries what the server returned.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	// Logger for all levels, stderr by default
	logger = newLogger(os.Stderr)

	// Track the current output destination so Success can follow redirection
	currentOutput io.Writer = os.Stderr
)

// newLogger builds a charmbracelet logger with the gns3util timestamp format
// and level styling applied.
func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	l.SetStyles(setupCustomStyles())
	return l
}

// setupCustomStyles creates custom color styling for log levels.
// Chosen so that levels stay readable in both light and dark terminals.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

// Info logs informational messages about request flow and command progress.
func Info(format string, v ...any) {
	logger.Info(fmt.Sprintf(format, v...))
}

// Warn logs warning messages for non-critical issues requiring attention,
// such as a missing credential file.
func Warn(format string, v ...any) {
	logger.Warn(fmt.Sprintf(format, v...))
}

// Error logs error messages for failed API calls and aborted commands.
// ERROR stays visible even when the CLI suppresses other levels.
func Error(format string, v ...any) {
	logger.Error(fmt.Sprintf(format, v...))
}

// Success logs successful operations in green using INFO level with custom styling.
// Implements a custom SUCCESS level that respects INFO level filtering.
func Success(format string, v ...any) {
	// Success uses INFO level internally
	if logger.GetLevel() > log.InfoLevel {
		return
	}

	// Override the INFO label to display "SUCCESS" in light green
	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281"))

	tempLogger := log.NewWithOptions(currentOutput, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	tempLogger.SetStyles(styles)
	tempLogger.SetLevel(logger.GetLevel())

	tempLogger.Info(fmt.Sprintf(format, v...))
}

// Debug logs detailed debugging information such as request URLs and
// response timings.
func Debug(format string, v ...any) {
	logger.Debug(fmt.Sprintf(format, v...))
}

// SetLevel configures the minimum logging level. Accepts the level strings
// from ValidLogLevels; anything else falls back to INFO.
func SetLevel(level string) {
	var logLevel log.Level
	switch level {
	case "DEBUG":
		logLevel = log.DebugLevel
	case "INFO":
		logLevel = log.InfoLevel
	case "WARN":
		logLevel = log.WarnLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
	}

	logger.SetLevel(logLevel)
}

// SetOutput redirects all log output to w, keeping the current level.
// When w is nil, all output is suppressed.
func SetOutput(w io.Writer) {
	if w == nil {
		logger.SetLevel(log.FatalLevel + 1)
		return
	}

	level := logger.GetLevel()
	logger = newLogger(w)
	logger.SetLevel(level)
	currentOutput = w
}

// SuppressOutput disables INFO/WARN/DEBUG logs while keeping ERROR logs visible.
// Used by the CLI to keep normal runs quiet.
func SuppressOutput() {
	logger.SetLevel(log.ErrorLevel)
}

// RestoreOutput restores normal logging to stderr at INFO level and above.
func RestoreOutput() {
	logger = newLogger(os.Stderr)
	logger.SetLevel(log.InfoLevel)
	currentOutput = os.Stderr
}
