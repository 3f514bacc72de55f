package handlers

import (
	"github.com/concave-dev/gns3util/cmd/gns3util/config"
	"github.com/concave-dev/gns3util/cmd/gns3util/display"
	"github.com/concave-dev/gns3util/cmd/gns3util/registry"
	"github.com/concave-dev/gns3util/cmd/gns3util/utils"
	"github.com/concave-dev/gns3util/internal/logging"
	"github.com/concave-dev/gns3util/internal/validate"
	"github.com/spf13/cobra"
)

// Dispatch returns the RunE function of the command generated for desc. The
// descriptor is captured by value; the returned function holds no other
// state.
//
// The facade result is handed to the renderer as it is. A failed call has
// already been logged by the client and renders nothing.
func Dispatch(desc registry.Descriptor) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		utils.SetupLogging()

		for i, arg := range args {
			if i < len(desc.Args) {
				if err := validate.ValidateRequiredString(arg, desc.Args[i]); err != nil {
					return err
				}
			}
		}

		api, err := NewFacade()
		if err != nil {
			return err
		}

		logging.Info("Calling %s on %s", desc.Operation, config.Global.Server)
		for i := 0; i < len(args) && i < len(desc.Args); i++ {
			logging.Debug("  %s = %s", desc.Args[i], logging.FormatID(args[i]))
		}

		result, err := desc.Invoke(api, args)
		if err != nil {
			return err
		}

		if result.OK {
			logging.Success("%s succeeded", desc.Operation)
		}
		return display.RenderResult(cmd.OutOrStdout(), result)
	}
}
