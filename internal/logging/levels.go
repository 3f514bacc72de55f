// Package logging provides centralized log level validation for gns3util.
//
// SUPPORTED LOG LEVELS:
//   - DEBUG: Request URLs, response codes and timings
//   - INFO:  General progress of a command
//   - WARN:  Conditions worth noting that do not stop the command
//   - ERROR: Failed API calls and aborted commands
//
// Level strings are case-sensitive and must be uppercase.
package logging

import "fmt"

// ValidLogLevels defines the canonical set of supported log levels. The
// --log-level flag and SetLevel both rely on this set.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel checks if the provided log level string is supported.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel validates a log level string and returns an error if invalid.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
