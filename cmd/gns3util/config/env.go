// Package config provides configuration management for the gns3util CLI.
// This file overlays environment variables onto flags the user left unset.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// environment lists the variables gns3util reads. Flags always win over the
// environment when both are given.
type environment struct {
	Server   string `env:"GNS3_SERVER"`
	KeyFile  string `env:"GNS3_KEY_FILE"`
	Selector string `env:"GNS3UTIL_SELECTOR"`
}

// ApplyEnv copies environment values into Global for every flag that was not
// set explicitly on the command line.
func ApplyEnv(cmd *cobra.Command) error {
	var e environment
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	flags := cmd.Flags()
	if e.Server != "" && !flags.Changed("server") {
		Global.Server = e.Server
	}
	if e.KeyFile != "" && !flags.Changed("key-file") {
		Global.KeyFile = e.KeyFile
	}
	if e.Selector != "" && !flags.Changed("selector") {
		Global.Selector = e.Selector
	}
	return nil
}
