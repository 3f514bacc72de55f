// Package commands provides the interactive drill-down commands for gns3util.
package commands

import (
	"github.com/spf13/cobra"
)

// Find user info command
var findUserInfoCmd = &cobra.Command{
	Use:     "find-user-info",
	Aliases: []string{"fui"},
	Short:   "Find user info by fuzzy username search",
	Args:    cobra.NoArgs,
}

// Find user info and group membership command
var findUserGroupsCmd = &cobra.Command{
	Use:     "find-user-info-and-group-membership",
	Aliases: []string{"fuig"},
	Short:   "Find user info and the user's groups by fuzzy username search",
	Args:    cobra.NoArgs,
}

// Find group info command
var findGroupInfoCmd = &cobra.Command{
	Use:     "find-group-info",
	Aliases: []string{"fgi"},
	Short:   "Find group info by fuzzy group name search",
	Args:    cobra.NoArgs,
}

// Find group info with members command
var findGroupMembersCmd = &cobra.Command{
	Use:     "find-group-info-with-usernames",
	Aliases: []string{"fgim"},
	Short:   "Find group info and the group's members by fuzzy group name search",
	Args:    cobra.NoArgs,
}

// Usernames and ids command
var usernamesAndIDsCmd = &cobra.Command{
	Use:   "usernames-and-ids",
	Short: "List all users and their ids",
	Args:  cobra.NoArgs,
}

// SetupFindCommands adds the drill-down commands to the get group
func SetupFindCommands() {
	getCmd.AddCommand(findUserInfoCmd)
	getCmd.AddCommand(findUserGroupsCmd)
	getCmd.AddCommand(findGroupInfoCmd)
	getCmd.AddCommand(findGroupMembersCmd)
	getCmd.AddCommand(usernamesAndIDsCmd)
}

// FindCommands holds the drill-down commands for handler assignment.
type FindCommands struct {
	UserInfo        *cobra.Command
	UserGroups      *cobra.Command
	GroupInfo       *cobra.Command
	GroupMembers    *cobra.Command
	UsernamesAndIDs *cobra.Command
}

// GetFindCommands returns the drill-down commands for handler assignment
func GetFindCommands() FindCommands {
	return FindCommands{
		UserInfo:        findUserInfoCmd,
		UserGroups:      findUserGroupsCmd,
		GroupInfo:       findGroupInfoCmd,
		GroupMembers:    findGroupMembersCmd,
		UsernamesAndIDs: usernamesAndIDsCmd,
	}
}
