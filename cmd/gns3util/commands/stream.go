// Package commands provides the notification stream commands for gns3util.
package commands

import (
	"github.com/spf13/cobra"
)

// Notifications stream command
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Stream controller notifications",
	Long: `Stream the controller notification feed, one JSON event per line.

The stream stops when the server closes it, when --timeout elapses or on
Ctrl-C.`,
	Example: `  # Watch notifications for the default 60 seconds
  gns3util get notifications

  # Watch for five minutes
  gns3util get notifications -t 300`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Project notifications stream command
var projectNotificationsCmd = &cobra.Command{
	Use:   "project-id <project-id>",
	Short: "Stream notifications of one project",
	Long: `Stream the notification feed of a single project, one JSON event per
line, with the same bounds as the notifications command.`,
	Example: `  gns3util get project-id 3c8f9a2b-1d4e-4f6a-9b7c-0e2d4f6a8b1c -t 30`,
	Args:    cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// SetupStreamCommands adds the stream commands to the get group
func SetupStreamCommands() {
	getCmd.AddCommand(notificationsCmd)
	getCmd.AddCommand(projectNotificationsCmd)
}

// SetupStreamFlags configures the --timeout flag of both stream commands
func SetupStreamFlags(timeoutPtr *int, defaultTimeout int) {
	for _, cmd := range []*cobra.Command{notificationsCmd, projectNotificationsCmd} {
		cmd.Flags().IntVarP(timeoutPtr, "timeout", "t", defaultTimeout,
			"Notification stream timeout in seconds")
	}
}

// GetStreamCommands returns the stream commands for handler assignment
func GetStreamCommands() (*cobra.Command, *cobra.Command) {
	return notificationsCmd, projectNotificationsCmd
}
