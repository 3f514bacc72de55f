package client

import (
	"context"
	"time"
)

// Facade is the read-only GNS3 API surface consumed by the command registry
// and the drill-down workflows. Each read operation takes exactly the
// positional identifiers its command accepts, parent identifier first.
type Facade interface {
	// Server and access control
	Version() Result
	IOULicense() Result
	Statistics() Result
	CurrentUserInfo() Result
	Users() Result
	User(userID string) Result
	UsersGroups(userID string) Result
	Groups() Result
	GroupByID(groupID string) Result
	GroupMembers(groupID string) Result
	Roles() Result
	RoleByID(roleID string) Result
	RolePrivileges(roleID string) Result
	Privileges() Result
	ACLEndpoints() Result
	ACL() Result
	ACLByID(aceID string) Result

	// Projects and their contents
	Projects() Result
	Project(projectID string) Result
	ProjectStats(projectID string) Result
	ProjectLocked(projectID string) Result
	Snapshots(projectID string) Result
	Drawings(projectID string) Result
	Drawing(projectID, drawingID string) Result
	Links(projectID string) Result
	Link(projectID, linkID string) Result
	LinkFilters(projectID, linkID string) Result
	Nodes(projectID string) Result
	NodeByID(projectID, nodeID string) Result
	NodeLinks(projectID, nodeID string) Result

	// Templates, symbols, images and appliances
	Templates() Result
	TemplateByID(templateID string) Result
	Symbols() Result
	DefaultSymbols() Result
	Symbol(symbolID string) Result
	Images(imageType string) Result
	ImagesByPath(imagePath string) Result
	Appliances() Result
	Appliance(applianceID string) Result

	// Computes and resource pools
	Computes() Result
	ComputeByID(computeID string) Result
	ComputeDockerImages(computeID string) Result
	ComputeVirtualBoxVMs(computeID string) Result
	ComputeVMwareVMs(computeID string) Result
	Pools() Result
	Pool(poolID string) Result
	PoolResources(poolID string) Result

	// Notification streams, bounded by timeout and ctx
	Notifications(ctx context.Context, timeout time.Duration)
	ProjectNotifications(ctx context.Context, projectID string, timeout time.Duration)
}

var _ Facade = (*APIClient)(nil)
