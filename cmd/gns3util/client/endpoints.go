package client

// id builds the path parameter map for a single identifier.
func id(value string) map[string]string {
	return map[string]string{"id": value}
}

// projectItem builds the path parameter map for a resource inside a project.
func projectItem(projectID, itemID string) map[string]string {
	return map[string]string{"project_id": projectID, "id": itemID}
}

// Version fetches the server version.
func (api *APIClient) Version() Result {
	return api.get("/version", nil, nil, nil)
}

// IOULicense fetches the IOU license settings.
func (api *APIClient) IOULicense() Result {
	return api.get("/iou_license", nil, nil, nil)
}

// Statistics fetches compute statistics.
func (api *APIClient) Statistics() Result {
	return api.get("/statistics", nil, nil, nil)
}

// CurrentUserInfo fetches the user owning the stored credential.
func (api *APIClient) CurrentUserInfo() Result {
	return api.get("/access/users/me", nil, nil, nil)
}

// Users fetches all users.
func (api *APIClient) Users() Result {
	return api.get("/access/users", nil, nil, nil)
}

// User fetches one user.
func (api *APIClient) User(userID string) Result {
	return api.get("/access/users/{id}", id(userID), nil, nil)
}

// UsersGroups fetches the groups a user belongs to.
func (api *APIClient) UsersGroups(userID string) Result {
	return api.get("/access/users/{id}/groups", id(userID), nil, nil)
}

// Groups fetches all user groups.
func (api *APIClient) Groups() Result {
	return api.get("/access/groups", nil, nil, nil)
}

// GroupByID fetches one user group.
func (api *APIClient) GroupByID(groupID string) Result {
	return api.get("/access/groups/{id}", id(groupID), nil, nil)
}

// GroupMembers fetches the members of a user group.
func (api *APIClient) GroupMembers(groupID string) Result {
	return api.get("/access/groups/{id}/members", id(groupID), nil, nil)
}

// Roles fetches all roles.
func (api *APIClient) Roles() Result {
	return api.get("/access/roles", nil, nil, nil)
}

// RoleByID fetches one role.
func (api *APIClient) RoleByID(roleID string) Result {
	return api.get("/access/roles/{id}", id(roleID), nil, nil)
}

// RolePrivileges fetches the privileges granted by a role.
func (api *APIClient) RolePrivileges(roleID string) Result {
	return api.get("/access/roles/{id}/privileges", id(roleID), nil, nil)
}

// Privileges fetches every known privilege.
func (api *APIClient) Privileges() Result {
	return api.get("/access/privileges", nil, nil, nil)
}

// ACLEndpoints fetches the endpoints an ACE can target.
func (api *APIClient) ACLEndpoints() Result {
	return api.get("/access/acl/endpoints", nil, nil, nil)
}

// ACL fetches all access control entries.
func (api *APIClient) ACL() Result {
	return api.get("/access/acl", nil, nil, nil)
}

// ACLByID fetches one access control entry.
func (api *APIClient) ACLByID(aceID string) Result {
	return api.get("/access/acl/{id}", id(aceID), nil, nil)
}

// Projects fetches all projects.
func (api *APIClient) Projects() Result {
	return api.get("/projects", nil, nil, nil)
}

// Project fetches one project.
func (api *APIClient) Project(projectID string) Result {
	return api.get("/projects/{id}", id(projectID), nil, nil)
}

// ProjectStats fetches node, link and drawing counts of a project.
func (api *APIClient) ProjectStats(projectID string) Result {
	return api.get("/projects/{id}/stats", id(projectID), nil, nil)
}

// ProjectLocked reports whether a project is locked.
func (api *APIClient) ProjectLocked(projectID string) Result {
	return api.get("/projects/{id}/locked", id(projectID), nil, nil)
}

// Snapshots fetches the snapshots of a project.
func (api *APIClient) Snapshots(projectID string) Result {
	return api.get("/projects/{id}/snapshots", id(projectID), nil, nil)
}

// Drawings fetches the drawings of a project.
func (api *APIClient) Drawings(projectID string) Result {
	return api.get("/projects/{id}/drawings", id(projectID), nil, nil)
}

// Drawing fetches one drawing of a project.
func (api *APIClient) Drawing(projectID, drawingID string) Result {
	return api.get("/projects/{project_id}/drawings/{id}", projectItem(projectID, drawingID), nil, nil)
}

// Links fetches the links of a project.
func (api *APIClient) Links(projectID string) Result {
	return api.get("/projects/{id}/links", id(projectID), nil, nil)
}

// Link fetches one link of a project.
func (api *APIClient) Link(projectID, linkID string) Result {
	return api.get("/projects/{project_id}/links/{id}", projectItem(projectID, linkID), nil, nil)
}

// LinkFilters fetches the packet filters available on a link.
func (api *APIClient) LinkFilters(projectID, linkID string) Result {
	return api.get("/projects/{project_id}/links/{id}/available_filters", projectItem(projectID, linkID), nil, nil)
}

// Nodes fetches the nodes of a project.
func (api *APIClient) Nodes(projectID string) Result {
	return api.get("/projects/{id}/nodes", id(projectID), nil, nil)
}

// NodeByID fetches one node of a project.
func (api *APIClient) NodeByID(projectID, nodeID string) Result {
	return api.get("/projects/{project_id}/nodes/{id}", projectItem(projectID, nodeID), nil, nil)
}

// NodeLinks fetches the links attached to a node.
func (api *APIClient) NodeLinks(projectID, nodeID string) Result {
	return api.get("/projects/{project_id}/nodes/{id}/links", projectItem(projectID, nodeID), nil, nil)
}

// Templates fetches all templates.
func (api *APIClient) Templates() Result {
	return api.get("/templates", nil, nil, nil)
}

// TemplateByID fetches one template.
func (api *APIClient) TemplateByID(templateID string) Result {
	return api.get("/templates/{id}", id(templateID), nil, nil)
}

// Symbols fetches the symbol catalogue.
func (api *APIClient) Symbols() Result {
	return api.get("/symbols", nil, nil, nil)
}

// DefaultSymbols fetches the default symbol per node type.
func (api *APIClient) DefaultSymbols() Result {
	return api.get("/symbols/default_symbols", nil, nil, nil)
}

// Symbol fetches the raw content of a symbol. SVG bodies come back as a JSON
// string.
func (api *APIClient) Symbol(symbolID string) Result {
	return api.get("/symbols/{id}/raw", id(symbolID), nil, nil)
}

// Images fetches the images of one type (qemu, ios, iou).
func (api *APIClient) Images(imageType string) Result {
	return api.get("/images", nil, nil, map[string]string{"image_type": imageType})
}

// ImagesByPath fetches one image by its path on the server.
func (api *APIClient) ImagesByPath(imagePath string) Result {
	return api.get("/images/{path}", nil, map[string]string{"path": imagePath}, nil)
}

// Appliances fetches the appliance catalogue.
func (api *APIClient) Appliances() Result {
	return api.get("/appliances", nil, nil, nil)
}

// Appliance fetches one appliance.
func (api *APIClient) Appliance(applianceID string) Result {
	return api.get("/appliances/{id}", id(applianceID), nil, nil)
}

// Computes fetches all computes.
func (api *APIClient) Computes() Result {
	return api.get("/computes", nil, nil, nil)
}

// ComputeByID fetches one compute.
func (api *APIClient) ComputeByID(computeID string) Result {
	return api.get("/computes/{id}", id(computeID), nil, nil)
}

// ComputeDockerImages fetches the Docker images available on a compute.
func (api *APIClient) ComputeDockerImages(computeID string) Result {
	return api.get("/computes/{id}/docker/images", id(computeID), nil, nil)
}

// ComputeVirtualBoxVMs fetches the VirtualBox VMs available on a compute.
func (api *APIClient) ComputeVirtualBoxVMs(computeID string) Result {
	return api.get("/computes/{id}/virtualbox/vms", id(computeID), nil, nil)
}

// ComputeVMwareVMs fetches the VMware VMs available on a compute.
func (api *APIClient) ComputeVMwareVMs(computeID string) Result {
	return api.get("/computes/{id}/vmware/vms", id(computeID), nil, nil)
}

// Pools fetches all resource pools.
func (api *APIClient) Pools() Result {
	return api.get("/pools", nil, nil, nil)
}

// Pool fetches one resource pool.
func (api *APIClient) Pool(poolID string) Result {
	return api.get("/pools/{id}", id(poolID), nil, nil)
}

// PoolResources fetches the resources held by a pool.
func (api *APIClient) PoolResources(poolID string) Result {
	return api.get("/pools/{id}/resources", id(poolID), nil, nil)
}
