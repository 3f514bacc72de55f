// Package logging provides ID formatting utilities for consistent ID display
// in gns3util log lines.
//
// GNS3 identifies users, groups, projects and nodes by UUID. Debug logs keep
// the full value for traceability; every other level shows the first UUID
// group, which is enough to tell entities apart while reading a log.
package logging

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Length of a displayed short ID (first UUID group)
const shortIDLength = 8

// FormatID formats an ID for logging based on the current log level.
//
// Usage: logging.Info("Fetching project %s", logging.FormatID(projectID))
func FormatID(id string) string {
	if logger.GetLevel() <= log.DebugLevel {
		return id
	}
	return ShortID(id)
}

// ShortID truncates id to its first UUID group. IDs that are not longer than
// that, or that contain a slash such as image paths, are returned unchanged.
func ShortID(id string) string {
	if len(id) <= shortIDLength || strings.Contains(id, "/") {
		return id
	}
	if dash := strings.IndexByte(id, '-'); dash > 0 && dash <= shortIDLength {
		return id[:dash]
	}
	return id[:shortIDLength]
}
