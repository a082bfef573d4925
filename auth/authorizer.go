package auth

// Permission names checked by the back-office endpoints.
const (
	PermJobsCreate = "jobs.create"
	PermJobsUpdate = "jobs.update"
	PermJobsDelete = "jobs.delete"

	PermMaintenanceCreate = "maintenance.create"
	PermMaintenanceUpdate = "maintenance.update"
	PermMaintenanceDelete = "maintenance.delete"

	PermPermissionsCreate = "permissions.create"
	PermPermissionsUpdate = "permissions.update"
	PermPermissionsDelete = "permissions.delete"

	PermRolesCreate = "roles.create"
	PermRolesUpdate = "roles.update"
	PermRolesDelete = "roles.delete"
)

// PermissionCatalogue lists every permission the API checks, with a short
// description.
func PermissionCatalogue() map[string]string {
	return map[string]string{
		PermJobsCreate:        "Create job postings",
		PermJobsUpdate:        "Edit job postings",
		PermJobsDelete:        "Remove job postings",
		PermMaintenanceCreate: "Log bus maintenance records",
		PermMaintenanceUpdate: "Edit bus maintenance records",
		PermMaintenanceDelete: "Remove bus maintenance records",
		PermPermissionsCreate: "Define new permissions",
		PermPermissionsUpdate: "Edit permission descriptions",
		PermPermissionsDelete: "Remove permissions",
		PermRolesCreate:       "Create roles",
		PermRolesUpdate:       "Edit roles and their permissions",
		PermRolesDelete:       "Remove roles",
	}
}
