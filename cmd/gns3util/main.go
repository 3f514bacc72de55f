// Package main provides the entry point for the GNS3 read-only CLI (gns3util).
//
// CLI ARCHITECTURE:
// The main package wires the command tree together:
//   - Command Structure: the `get` group defined in the commands package
//   - Registry Commands: one generated command per registry descriptor
//   - Handler Integration: RunE functions from the handlers package
//   - Configuration Binding: global flags, environment and validation
//
// INITIALIZATION FLOW:
// 1. Registry validation: every descriptor must name a facade operation with
// a matching argument count, or the binary refuses to start
// 2. Command structure setup and handler assignment
// 3. Flag configuration for global and stream options
// 4. Command execution; any returned error is printed on one line and the
// process exits with status 1
package main

import (
	"fmt"
	"os"

	"github.com/concave-dev/gns3util/cmd/gns3util/commands"
	"github.com/concave-dev/gns3util/cmd/gns3util/config"
	"github.com/concave-dev/gns3util/cmd/gns3util/handlers"
	"github.com/concave-dev/gns3util/cmd/gns3util/registry"
)

func init() {
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	descs := registry.All()
	if err := registry.Validate(descs); err != nil {
		fmt.Fprintf(os.Stderr, "invalid command registry: %v\n", err)
		os.Exit(1)
	}

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupGetCommands(descs, handlers.Dispatch)
	commands.SetupStreamCommands()
	commands.SetupFindCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, commands.GlobalFlags{
		Server:         &config.Global.Server,
		KeyFile:        &config.Global.KeyFile,
		LogLevel:       &config.Global.LogLevel,
		RequestTimeout: &config.Global.RequestTimeout,
		Insecure:       &config.Global.Insecure,
		Selector:       &config.Global.Selector,
		NoColor:        &config.Global.NoColor,
	}, commands.GlobalDefaults{
		KeyFile:        config.DefaultKeyFile,
		RequestTimeout: config.DefaultRequestTimeout,
		Selector:       config.DefaultSelector,
	})

	// Setup stream command flags
	commands.SetupStreamFlags(&config.Stream.Timeout, config.DefaultStreamTimeout)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to the hand-declared commands.
// Registry commands get theirs from SetupGetCommands.
func setupCommandHandlers() {
	notificationsCmd, projectNotificationsCmd := commands.GetStreamCommands()
	notificationsCmd.RunE = handlers.HandleNotifications
	projectNotificationsCmd.RunE = handlers.HandleProjectNotifications

	find := commands.GetFindCommands()
	find.UserInfo.RunE = handlers.HandleFindUserInfo
	find.UserGroups.RunE = handlers.HandleFindUserGroups
	find.GroupInfo.RunE = handlers.HandleFindGroupInfo
	find.GroupMembers.RunE = handlers.HandleFindGroupMembers
	find.UsernamesAndIDs.RunE = handlers.HandleUsernamesAndIDs
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
