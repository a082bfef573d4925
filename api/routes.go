package api

import (
	"github.com/gofiber/fiber/v2"

	"coachline.com/backoffice/auth"
	authfiber "coachline.com/backoffice/auth/fiber"
)

// SetupRoutes registers the /api routes. Reads need a caller identity;
// mutations need the administrator role or the named permission.
func SetupRoutes(app *fiber.App, d Deps) {
	h := NewHandlers(d)
	guard := authfiber.NewGuard(d.Authorizer, d.Log, d.Metrics)
	authenticated := guard.RequireAuthenticated()

	api := app.Group("/api")
	api.Get("/me", authenticated, h.Me)

	jobs := api.Group("/jobs")
	jobs.Get("/", authenticated, h.ListJobs)
	jobs.Get("/:id", authenticated, h.GetJob)
	jobs.Post("/", guard.RequireAdminOr(auth.PermJobsCreate), h.CreateJob)
	jobs.Put("/:id", guard.RequireAdminOr(auth.PermJobsUpdate), h.UpdateJob)
	jobs.Delete("/:id", guard.RequireAdminOr(auth.PermJobsDelete), h.DeleteJob)

	maintenance := api.Group("/maintenance")
	maintenance.Get("/", authenticated, h.ListMaintenance)
	maintenance.Get("/:id", authenticated, h.GetMaintenance)
	maintenance.Post("/", guard.RequireAdminOr(auth.PermMaintenanceCreate), h.CreateMaintenance)
	maintenance.Put("/:id", guard.RequireAdminOr(auth.PermMaintenanceUpdate), h.UpdateMaintenance)
	maintenance.Delete("/:id", guard.RequireAdminOr(auth.PermMaintenanceDelete), h.DeleteMaintenance)

	permissions := api.Group("/permissions")
	permissions.Get("/", authenticated, h.ListPermissions)
	permissions.Get("/:id", authenticated, h.GetPermission)
	permissions.Post("/", guard.RequireAdminOr(auth.PermPermissionsCreate), h.CreatePermission)
	permissions.Put("/:id", guard.RequireAdminOr(auth.PermPermissionsUpdate), h.UpdatePermission)
	permissions.Delete("/:id", guard.RequireAdminOr(auth.PermPermissionsDelete), h.DeletePermission)

	roles := api.Group("/roles")
	roles.Get("/", authenticated, h.ListRoles)
	roles.Get("/:id", authenticated, h.GetRole)
	roles.Post("/", guard.RequireAdminOr(auth.PermRolesCreate), h.CreateRole)
	roles.Put("/:id", guard.RequireAdminOr(auth.PermRolesUpdate), h.UpdateRole)
	roles.Delete("/:id", guard.RequireAdminOr(auth.PermRolesDelete), h.DeleteRole)
	roles.Post("/:id/permissions", guard.RequireAdminOr(auth.PermRolesUpdate), h.AssignPermission)
	roles.Delete("/:id/permissions/:permissionId", guard.RequireAdminOr(auth.PermRolesUpdate), h.RevokePermission)
}
