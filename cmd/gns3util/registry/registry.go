// Package registry holds the declarative tables behind the generated
// `gns3util get` commands.
//
// Each table row binds a CLI command name to a typed Facade method
// expression. Rows are partitioned by arity, the number of positional
// identifiers the command takes, so that one builder per arity replaces one
// handwritten function per command. Adding a read endpoint means adding one
// row here and the method it references on client.Facade.
//
// Two-argument rows always take the parent project identifier first and the
// resource identifier second. The order is encoded in each row's Args, never
// inferred.
package registry

import (
	"fmt"
	"reflect"

	"github.com/concave-dev/gns3util/cmd/gns3util/client"
)

// Arity is the number of positional identifiers a command requires.
type Arity int

const (
	ZeroArgs Arity = 0
	OneArg   Arity = 1
	TwoArgs  Arity = 2
)

// Descriptor describes one generated command. Values are built once at
// package initialization and never mutated.
type Descriptor struct {
	Name      string   // CLI command name, unique across all tables
	Arity     Arity    // Number of positional identifiers
	Operation string   // Facade method name, checked by Validate
	Args      []string // Positional argument names in call order
	Short     string   // One-line help text

	call func(api client.Facade, args []string) client.Result
}

// Invoke calls the descriptor's facade operation with args in declared order.
func (d Descriptor) Invoke(api client.Facade, args []string) (client.Result, error) {
	if len(args) != int(d.Arity) {
		return client.Result{}, fmt.Errorf("%s requires %d argument(s), got %d", d.Name, d.Arity, len(args))
	}
	return d.call(api, args), nil
}

type zeroArgRow struct {
	name, op, short string
	fn              func(client.Facade) client.Result
}

type oneArgRow struct {
	name, op, arg, short string
	fn                   func(client.Facade, string) client.Result
}

type twoArgRow struct {
	name, op, parent, arg, short string
	fn                           func(client.Facade, string, string) client.Result
}

// Commands with no arguments
var zeroArgCommands = []zeroArgRow{
	{"version", "Version", "Show the server version", client.Facade.Version},
	{"iou-license", "IOULicense", "Show the IOU license settings", client.Facade.IOULicense},
	{"statistics", "Statistics", "Show compute statistics", client.Facade.Statistics},
	{"me", "CurrentUserInfo", "Show the authenticated user", client.Facade.CurrentUserInfo},
	{"users", "Users", "List all users", client.Facade.Users},
	{"projects", "Projects", "List all projects", client.Facade.Projects},
	{"groups", "Groups", "List all user groups", client.Facade.Groups},
	{"roles", "Roles", "List all roles", client.Facade.Roles},
	{"privileges", "Privileges", "List all privileges", client.Facade.Privileges},
	{"acl-endpoints", "ACLEndpoints", "List the endpoints ACL rules can target", client.Facade.ACLEndpoints},
	{"acl", "ACL", "List all ACL rules", client.Facade.ACL},
	{"templates", "Templates", "List all templates", client.Facade.Templates},
	{"symbols", "Symbols", "List all symbols", client.Facade.Symbols},
	{"default-symbols", "DefaultSymbols", "List the default symbols", client.Facade.DefaultSymbols},
	{"computes", "Computes", "List all computes", client.Facade.Computes},
	{"appliances", "Appliances", "List all appliances", client.Facade.Appliances},
	{"pools", "Pools", "List all resource pools", client.Facade.Pools},
}

// Commands with one argument
var oneArgCommands = []oneArgRow{
	{"user", "User", "user-id", "Show a user", client.Facade.User},
	{"user-groups", "UsersGroups", "user-id", "List the groups of a user", client.Facade.UsersGroups},
	{"project", "Project", "project-id", "Show a project", client.Facade.Project},
	{"project-stats", "ProjectStats", "project-id", "Show project statistics", client.Facade.ProjectStats},
	{"project-locked", "ProjectLocked", "project-id", "Show whether a project is locked", client.Facade.ProjectLocked},
	{"group", "GroupByID", "group-id", "Show a user group", client.Facade.GroupByID},
	{"group-members", "GroupMembers", "group-id", "List the members of a user group", client.Facade.GroupMembers},
	{"role", "RoleByID", "role-id", "Show a role", client.Facade.RoleByID},
	{"role-privileges", "RolePrivileges", "role-id", "List the privileges of a role", client.Facade.RolePrivileges},
	{"template", "TemplateByID", "template-id", "Show a template", client.Facade.TemplateByID},
	{"compute", "ComputeByID", "compute-id", "Show a compute", client.Facade.ComputeByID},
	{"docker-images", "ComputeDockerImages", "compute-id", "List the Docker images of a compute", client.Facade.ComputeDockerImages},
	{"virtualbox-vms", "ComputeVirtualBoxVMs", "compute-id", "List the VirtualBox VMs of a compute", client.Facade.ComputeVirtualBoxVMs},
	{"vmware-vms", "ComputeVMwareVMs", "compute-id", "List the VMware VMs of a compute", client.Facade.ComputeVMwareVMs},
	{"images", "Images", "image-type", "List images of a type (qemu, ios, iou)", client.Facade.Images},
	{"images-by-path", "ImagesByPath", "image-path", "Show an image by its path", client.Facade.ImagesByPath},
	{"snapshots", "Snapshots", "project-id", "List the snapshots of a project", client.Facade.Snapshots},
	{"appliance", "Appliance", "appliance-id", "Show an appliance", client.Facade.Appliance},
	{"pool", "Pool", "pool-id", "Show a resource pool", client.Facade.Pool},
	{"pool-resources", "PoolResources", "pool-id", "List the resources of a pool", client.Facade.PoolResources},
	{"drawings", "Drawings", "project-id", "List the drawings of a project", client.Facade.Drawings},
	{"symbol", "Symbol", "symbol-id", "Show the raw content of a symbol", client.Facade.Symbol},
	{"acl-rule", "ACLByID", "ace-id", "Show an ACL rule", client.Facade.ACLByID},
	{"links", "Links", "project-id", "List the links of a project", client.Facade.Links},
	{"nodes", "Nodes", "project-id", "List the nodes of a project", client.Facade.Nodes},
}

// Commands with two arguments, project id first
var twoArgCommands = []twoArgRow{
	{"node", "NodeByID", "project-id", "node-id", "Show a node", client.Facade.NodeByID},
	{"node-links", "NodeLinks", "project-id", "node-id", "List the links of a node", client.Facade.NodeLinks},
	{"link", "Link", "project-id", "link-id", "Show a link", client.Facade.Link},
	{"link-filters", "LinkFilters", "project-id", "link-id", "List the filters available on a link", client.Facade.LinkFilters},
	{"drawing", "Drawing", "project-id", "drawing-id", "Show a drawing", client.Facade.Drawing},
}

var all = build()

// build flattens the three tables into descriptors. Each closure captures
// its own row value.
func build() []Descriptor {
	descs := make([]Descriptor, 0, len(zeroArgCommands)+len(oneArgCommands)+len(twoArgCommands))

	for _, row := range zeroArgCommands {
		fn := row.fn
		descs = append(descs, Descriptor{
			Name:      row.name,
			Arity:     ZeroArgs,
			Operation: row.op,
			Short:     row.short,
			call: func(api client.Facade, _ []string) client.Result {
				return fn(api)
			},
		})
	}

	for _, row := range oneArgCommands {
		fn := row.fn
		descs = append(descs, Descriptor{
			Name:      row.name,
			Arity:     OneArg,
			Operation: row.op,
			Args:      []string{row.arg},
			Short:     row.short,
			call: func(api client.Facade, args []string) client.Result {
				return fn(api, args[0])
			},
		})
	}

	for _, row := range twoArgCommands {
		fn := row.fn
		descs = append(descs, Descriptor{
			Name:      row.name,
			Arity:     TwoArgs,
			Operation: row.op,
			Args:      []string{row.parent, row.arg},
			Short:     row.short,
			call: func(api client.Facade, args []string) client.Result {
				return fn(api, args[0], args[1])
			},
		})
	}

	return descs
}

// All returns every descriptor in table order: zero, one, then two arguments.
// The returned slice is a copy.
func All() []Descriptor {
	return append([]Descriptor(nil), all...)
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range all {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

var facadeType = reflect.TypeOf((*client.Facade)(nil)).Elem()
var stringType = reflect.TypeOf("")

// Validate checks that command names are unique and that every Operation
// names a Facade method taking exactly Arity string parameters. Called once
// at startup so that a mismatched row fails loudly before any command runs.
func Validate(descs []Descriptor) error {
	seen := make(map[string]bool, len(descs))
	for _, d := range descs {
		if d.Name == "" {
			return fmt.Errorf("descriptor for %s has no command name", d.Operation)
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate command name %q", d.Name)
		}
		seen[d.Name] = true

		if len(d.Args) != int(d.Arity) {
			return fmt.Errorf("command %q declares %d argument name(s) for arity %d", d.Name, len(d.Args), d.Arity)
		}

		method, ok := facadeType.MethodByName(d.Operation)
		if !ok {
			return fmt.Errorf("command %q references unknown operation %q", d.Name, d.Operation)
		}
		if method.Type.NumIn() != int(d.Arity) {
			return fmt.Errorf("command %q: operation %s takes %d argument(s), arity is %d",
				d.Name, d.Operation, method.Type.NumIn(), d.Arity)
		}
		for i := 0; i < method.Type.NumIn(); i++ {
			if method.Type.In(i) != stringType {
				return fmt.Errorf("command %q: operation %s argument %d is not a string", d.Name, d.Operation, i)
			}
		}

		if d.call == nil {
			return fmt.Errorf("command %q has no operation bound", d.Name)
		}
	}
	return nil
}
