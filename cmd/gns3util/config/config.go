// Package config provides configuration management for the gns3util CLI.
package config

import "github.com/concave-dev/gns3util/internal/version"

const (
	DefaultKeyFile        = "~/.gns3key" // Credential file written by a GNS3 login
	DefaultRequestTimeout = 30           // Per-request HTTP timeout in seconds
	DefaultStreamTimeout  = 60           // Notification stream bound in seconds
	DefaultSelector       = SelectorBuiltin
)

// Selector back ends for the interactive drill-down commands.
const (
	SelectorBuiltin = "builtin" // In-process picker
	SelectorFzf     = "fzf"     // External fzf binary
)

// Version returns the current gns3util CLI version from the centralized version package
var Version = version.Gns3utilVersion

// Global holds the global CLI configuration
var Global struct {
	Server         string // GNS3 server URL, e.g. http://127.0.0.1:3080
	KeyFile        string // Path to the stored credential
	LogLevel       string // Log level for CLI operations
	RequestTimeout int    // Per-request HTTP timeout in seconds
	Insecure       bool   // Skip TLS certificate verification
	Selector       string // Drill-down selector back end: builtin, fzf
	NoColor        bool   // Disable colored output
}

// Stream holds the notification stream command configuration
var Stream struct {
	Timeout int // Stream duration bound in seconds
}
