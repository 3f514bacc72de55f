// Package commands provides the get command group for gns3util.
//
// The read commands are not written out one by one: SetupGetCommands builds
// one cobra command per registry descriptor, with the argument count and
// usage line taken from the descriptor.
package commands

import (
	"github.com/concave-dev/gns3util/cmd/gns3util/registry"
	"github.com/spf13/cobra"
)

// Get command (parent command for every read operation)
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Read resources from the GNS3 server",
	Long: `Commands for reading resources from the GNS3 server.

Resource commands print the server's JSON response. Commands that take two
identifiers always take the project id first.`,
}

// Runner builds the RunE function of a generated command.
type Runner func(desc registry.Descriptor) func(cmd *cobra.Command, args []string) error

// generated holds the commands built from the registry, by name
var generated = map[string]*cobra.Command{}

// SetupGetCommands adds one command per descriptor to the get group. Each
// command captures its own descriptor value through run.
func SetupGetCommands(descs []registry.Descriptor, run Runner) {
	for _, desc := range descs {
		cmd := newDescriptorCommand(desc)
		cmd.RunE = run(desc)
		generated[desc.Name] = cmd
		getCmd.AddCommand(cmd)
	}
}

func newDescriptorCommand(desc registry.Descriptor) *cobra.Command {
	use := desc.Name
	for _, arg := range desc.Args {
		use += " <" + arg + ">"
	}

	return &cobra.Command{
		Use:     use,
		Short:   desc.Short,
		Example: "  gns3util get " + use,
		Args:    cobra.ExactArgs(int(desc.Arity)),
	}
}

// GetCommand returns the generated command registered under name, or nil.
func GetCommand(name string) *cobra.Command {
	return generated[name]
}
