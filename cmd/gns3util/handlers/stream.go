package handlers

import (
	"context"
	"time"

	"github.com/concave-dev/gns3util/cmd/gns3util/config"
	"github.com/concave-dev/gns3util/cmd/gns3util/utils"
	"github.com/concave-dev/gns3util/internal/logging"
	"github.com/concave-dev/gns3util/internal/validate"
	"github.com/spf13/cobra"
)

// HandleNotifications handles `get notifications`: consume the controller
// notification stream until it ends, the --timeout elapses or the user
// interrupts. Events are printed by the client as they arrive.
func HandleNotifications(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := config.ValidateStreamTimeout(); err != nil {
		return err
	}

	api, err := NewFacade()
	if err != nil {
		return err
	}

	ctx, stop := utils.InterruptContext(commandContext(cmd))
	defer stop()

	api.Notifications(ctx, streamTimeout())
	return nil
}

// HandleProjectNotifications handles `get project-id <project-id>`: the same
// bounded stream scoped to one project.
func HandleProjectNotifications(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	projectID := args[0]
	if err := validate.ValidateRequiredString(projectID, "project-id"); err != nil {
		return err
	}
	if err := config.ValidateStreamTimeout(); err != nil {
		return err
	}

	api, err := NewFacade()
	if err != nil {
		return err
	}

	ctx, stop := utils.InterruptContext(commandContext(cmd))
	defer stop()

	logging.Info("Watching project %s", logging.FormatID(projectID))
	api.ProjectNotifications(ctx, projectID, streamTimeout())
	return nil
}

func streamTimeout() time.Duration {
	return time.Duration(config.Stream.Timeout) * time.Second
}

// commandContext returns the command's context, or Background when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
