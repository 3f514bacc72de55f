// Package commands provides the complete command tree implementation for gns3util.
//
// This package defines the command structure of the GNS3 read-only CLI. Every
// operation lives under the `get` group:
//
// COMMAND STRUCTURE:
//   - get <resource> [ids...]: generated from the registry, one command per
//     read endpoint, printing the JSON response
//   - get notifications, get project-id: bounded notification streams
//   - get find-*: interactive fuzzy drill-down over users and groups
//   - get usernames-and-ids: plain listing of every user and their id
//
// Commands are declared here without handlers; main assigns RunE functions
// from the handlers package.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "gns3util",
	Short: "Read-only command-line client for the GNS3 v3 API",
	Long: `gns3util is a command-line client for inspecting a GNS3 server.

It reads users, groups, ACLs, projects, nodes, links, templates, images and
computes through the GNS3 v3 REST API, streams notifications, and offers
fuzzy drill-down commands to find users and groups by name.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Example: `  # Show the server version
  gns3util -s http://127.0.0.1:3080 get version

  # Show one node of a project
  gns3util -s http://127.0.0.1:3080 get node <project-id> <node-id>

  # Find a user and the groups they belong to
  gns3util -s http://127.0.0.1:3080 get fuig

  # Stream notifications for two minutes
  gns3util -s http://127.0.0.1:3080 get notifications --timeout 120

  # Use the external fzf binary for drill-downs
  GNS3UTIL_SELECTOR=fzf gns3util -s http://127.0.0.1:3080 get fgi`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(getCmd)
}

// GlobalFlags holds the destinations of the global persistent flags.
type GlobalFlags struct {
	Server         *string
	KeyFile        *string
	LogLevel       *string
	RequestTimeout *int
	Insecure       *bool
	Selector       *string
	NoColor        *bool
}

// GlobalDefaults holds the defaults of the global persistent flags.
type GlobalDefaults struct {
	KeyFile        string
	RequestTimeout int
	Selector       string
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, flags GlobalFlags, defaults GlobalDefaults) {
	rootCmd.PersistentFlags().StringVarP(flags.Server, "server", "s", "",
		"GNS3 server URL, e.g. http://127.0.0.1:3080 (env GNS3_SERVER)")
	rootCmd.PersistentFlags().StringVar(flags.KeyFile, "key-file", defaults.KeyFile,
		"Credential file with the access token (env GNS3_KEY_FILE)")
	rootCmd.PersistentFlags().StringVar(flags.LogLevel, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(flags.RequestTimeout, "request-timeout", defaults.RequestTimeout,
		"Per-request timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(flags.Insecure, "insecure", "i", false,
		"Skip TLS certificate verification")
	rootCmd.PersistentFlags().StringVar(flags.Selector, "selector", defaults.Selector,
		"Drill-down selector: builtin, fzf (env GNS3UTIL_SELECTOR)")
	rootCmd.PersistentFlags().BoolVar(flags.NoColor, "no-color", false,
		"Disable colored output (also honours NO_COLOR)")
}
