// Package config provides configuration management for the gns3util CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/concave-dev/gns3util/internal/logging"
	"github.com/concave-dev/gns3util/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ApplyEnv(cmd); err != nil {
		return err
	}

	if err := ValidateServer(); err != nil {
		return err
	}

	if err := ValidateLogLevel(); err != nil {
		return err
	}

	if err := ValidateRequestTimeout(); err != nil {
		return err
	}

	if err := ValidateSelector(); err != nil {
		return err
	}

	return nil
}

// ValidateServer validates the --server flag
func ValidateServer() error {
	if Global.Server == "" {
		return fmt.Errorf("no GNS3 server given - use --server or set GNS3_SERVER")
	}

	addr, err := validate.ParseServerURL(Global.Server)
	if err != nil {
		logging.Error("Invalid server URL '%s': %v", Global.Server, err)
		return fmt.Errorf("invalid server URL - expected format: http(s)://host:port (e.g., http://127.0.0.1:3080)")
	}

	Global.Server = addr.String()
	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return fmt.Errorf("%w - valid levels are: DEBUG, INFO, WARN, ERROR", err)
	}
	return nil
}

// ValidateRequestTimeout validates the --request-timeout flag
func ValidateRequestTimeout() error {
	return validate.ValidatePositiveTimeout(time.Duration(Global.RequestTimeout)*time.Second, "request timeout")
}

// ValidateSelector validates the --selector flag
func ValidateSelector() error {
	if err := validate.ValidateField(Global.Selector, "oneof=builtin fzf"); err != nil {
		logging.Error("Invalid selector '%s' - valid selectors are: builtin, fzf", Global.Selector)
		return fmt.Errorf("invalid selector - valid: builtin, fzf")
	}
	return nil
}

// ValidateStreamTimeout validates the --timeout flag of the notification commands
func ValidateStreamTimeout() error {
	return validate.ValidatePositiveTimeout(time.Duration(Stream.Timeout)*time.Second, "notification timeout")
}

// ResolveKeyFile expands a leading "~" in Global.KeyFile to the user's home
// directory.
func ResolveKeyFile() (string, error) {
	path := Global.KeyFile
	if path == "" {
		path = DefaultKeyFile
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path, nil
}
