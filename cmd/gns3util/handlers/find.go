package handlers

import (
	"github.com/concave-dev/gns3util/cmd/gns3util/config"
	"github.com/concave-dev/gns3util/cmd/gns3util/resolver"
	"github.com/concave-dev/gns3util/cmd/gns3util/utils"
	"github.com/spf13/cobra"
)

// HandleFindUserInfo handles `get find-user-info`: pick users by username and
// print their fields.
func HandleFindUserInfo(cmd *cobra.Command, args []string) error {
	return drillDown(cmd, resolver.KindUser, false)
}

// HandleFindUserGroups handles `get find-user-info-and-group-membership`:
// like find-user-info, followed by each picked user's groups.
func HandleFindUserGroups(cmd *cobra.Command, args []string) error {
	return drillDown(cmd, resolver.KindUser, true)
}

// HandleFindGroupInfo handles `get find-group-info`: pick groups by name and
// print their fields.
func HandleFindGroupInfo(cmd *cobra.Command, args []string) error {
	return drillDown(cmd, resolver.KindGroup, false)
}

// HandleFindGroupMembers handles `get find-group-info-with-usernames`: like
// find-group-info, followed by each picked group's members.
func HandleFindGroupMembers(cmd *cobra.Command, args []string) error {
	return drillDown(cmd, resolver.KindGroup, true)
}

// HandleUsernamesAndIDs handles `get usernames-and-ids`.
func HandleUsernamesAndIDs(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	api, err := NewFacade()
	if err != nil {
		return err
	}

	r := &resolver.Resolver{Directory: api, Out: cmd.OutOrStdout()}
	return r.UsernamesAndIDs()
}

func drillDown(cmd *cobra.Command, kind resolver.Kind, showMembers bool) error {
	utils.SetupLogging()

	sel, err := NewSelector(config.Global.Selector)
	if err != nil {
		return err
	}

	api, err := NewFacade()
	if err != nil {
		return err
	}

	r := &resolver.Resolver{Directory: api, Selector: sel, Out: cmd.OutOrStdout()}
	return r.Resolve(kind, showMembers)
}
