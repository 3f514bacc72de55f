// Package netutil provides network error classification for gns3util.
//
// The API client uses these helpers to turn transport failures into messages
// that say what went wrong (nothing listening, no answer in time) instead of
// a raw dial error. Detection is type-based, never string matching.
package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsConnectionRefusedError checks if an error indicates "connection refused",
// typically a GNS3 server that is not running or listens on another port.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}

// IsTimeoutError checks if an error is a network timeout, including a
// request that exceeded its client timeout.
func IsTimeoutError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Hint returns a short explanation for common transport failures, or "".
func Hint(err error) string {
	switch {
	case IsConnectionRefusedError(err):
		return "connection refused, is the server running?"
	case IsTimeoutError(err):
		return "no response before the request timeout"
	default:
		return ""
	}
}
