package api

import (
	"github.com/gofiber/fiber/v2"

	"coachline.com/backoffice/pg/model"
)

type permissionRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type roleRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type assignPermissionRequest struct {
	PermissionID int64 `json:"permission_id" validate:"required,gt=0"`
}

func (h *Handlers) ListPermissions(c *fiber.Ctx) error {
	permissions, err := h.permissions.ListPermissions(c.Context())
	if err != nil {
		return h.storeError(c, "list permissions", err)
	}
	return c.JSON(permissions)
}

func (h *Handlers) GetPermission(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return invalidID(c)
	}
	perm, err := h.permissions.GetPermission(c.Context(), id)
	if err != nil {
		return h.storeError(c, "get permission", err)
	}
	return c.JSON(perm)
}

func (h *Handlers) CreatePermission(c *fiber.Ctx) error {
	var req permissionRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	perm := &model.Permission{Name: req.Name, Description: req.Description}
	if err := h.permissions.CreatePermission(c.Context(), perm); err != nil {
		return h.storeError(c, "create permission", err)
	}

	h.log.Info().Int64("permission_id", perm.ID).Str("name", perm.Name).Msg("permission created")
	return c.Status(fiber.StatusCreated).JSON(perm)
}

func (h *Handlers) UpdatePermission(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req permissionRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	perm := &model.Permission{ID: id, Name: req.Name, Description: req.Description}
	if err := h.permissions.UpdatePermission(c.Context(), perm); err != nil {
		return h.storeError(c, "update permission", err)
	}
	return c.JSON(perm)
}

func (h *Handlers) DeletePermission(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.permissions.DeletePermission(c.Context(), id); err != nil {
		return h.storeError(c, "delete permission", err)
	}

	h.log.Info().Int64("permission_id", id).Msg("permission deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) ListRoles(c *fiber.Ctx) error {
	roles, err := h.roles.ListRoles(c.Context())
	if err != nil {
		return h.storeError(c, "list roles", err)
	}
	return c.JSON(roles)
}

func (h *Handlers) GetRole(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return invalidID(c)
	}
	role, err := h.roles.GetRole(c.Context(), id)
	if err != nil {
		return h.storeError(c, "get role", err)
	}
	return c.JSON(role)
}

func (h *Handlers) CreateRole(c *fiber.Ctx) error {
	var req roleRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	role := &model.Role{Name: req.Name, Description: req.Description}
	if err := h.roles.CreateRole(c.Context(), role); err != nil {
		return h.storeError(c, "create role", err)
	}

	h.log.Info().Int64("role_id", role.ID).Str("name", role.Name).Msg("role created")
	return c.Status(fiber.StatusCreated).JSON(role)
}

// UpdateRole changes name and description only; grants go through the
// permissions sub-resource. The response is the stored role with its grants.
func (h *Handlers) UpdateRole(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req roleRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	if err := h.roles.UpdateRole(c.Context(), &model.Role{ID: id, Name: req.Name, Description: req.Description}); err != nil {
		return h.storeError(c, "update role", err)
	}

	role, err := h.roles.GetRole(c.Context(), id)
	if err != nil {
		return h.storeError(c, "get role", err)
	}
	h.log.Info().Int64("role_id", id).Msg("role updated")
	return c.JSON(role)
}

func (h *Handlers) DeleteRole(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return invalidID(c)
	}
	if id == model.AdminRoleID {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "The administrator role cannot be deleted",
		})
	}
	if err := h.roles.DeleteRole(c.Context(), id); err != nil {
		return h.storeError(c, "delete role", err)
	}

	h.log.Info().Int64("role_id", id).Msg("role deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) AssignPermission(c *fiber.Ctx) error {
	roleID, ok := int64Param(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req assignPermissionRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	if err := h.roles.AssignPermission(c.Context(), roleID, req.PermissionID); err != nil {
		return h.storeError(c, "assign permission", err)
	}

	h.log.Info().Int64("role_id", roleID).Int64("permission_id", req.PermissionID).Msg("permission assigned")
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) RevokePermission(c *fiber.Ctx) error {
	roleID, ok := int64Param(c, "id")
	if !ok {
		return invalidID(c)
	}
	permissionID, ok := int64Param(c, "permissionId")
	if !ok {
		return invalidID(c)
	}

	if err := h.roles.RevokePermission(c.Context(), roleID, permissionID); err != nil {
		return h.storeError(c, "revoke permission", err)
	}

	h.log.Info().Int64("role_id", roleID).Int64("permission_id", permissionID).Msg("permission revoked")
	return c.SendStatus(fiber.StatusNoContent)
}
