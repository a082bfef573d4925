package api

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"coachline.com/backoffice/auth"
	authfiber "coachline.com/backoffice/auth/fiber"
	"coachline.com/backoffice/pg/model"
)

// Handlers serves the back-office resources. Each handler calls one store
// method, except UpdateRole which re-reads the role to return its grants.
// Authorization has already happened in the route guard.
type Handlers struct {
	jobs        model.JobStore
	maintenance model.MaintenanceStore
	permissions model.PermissionStore
	roles       model.RoleStore
	authz       auth.Authorizer
	validator   *validator.Validate
	log         zerolog.Logger
}

// NewHandlers creates the handler set from d.
func NewHandlers(d Deps) *Handlers {
	return &Handlers{
		jobs:        d.Jobs,
		maintenance: d.Maintenance,
		permissions: d.Permissions,
		roles:       d.Roles,
		authz:       d.Authorizer,
		validator:   newValidator(),
		log:         d.Log.With().Str("component", "api").Logger(),
	}
}

// newValidator validates decimals by their numeric value so that tags such
// as gte=0 apply to money fields.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Me describes the caller as seen through its claims.
func (h *Handlers) Me(c *fiber.Ctx) error {
	userID, _ := h.authz.UserID(c)
	resp := fiber.Map{
		"user_id":  userID,
		"is_admin": h.authz.IsAdmin(c),
	}
	if identity, ok := h.authz.SpacetimeIdentity(c); ok {
		resp["identity"] = identity
	}
	if xuid, ok := h.authz.Xuid(c); ok {
		resp["xuid"] = xuid
	}
	return c.JSON(resp)
}

// parseBody decodes and validates the request body into req. The returned
// *fiber.Error is rendered as 400 by the app error handler.
func (h *Handlers) parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}
	return nil
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

func int64Param(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	return id, err == nil && id > 0
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
}

// storeError maps a store failure onto a response.
func (h *Handlers) storeError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, model.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Conflict"})
	default:
		h.log.Error().Err(err).Str("op", op).Msg("store operation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to " + op,
		})
	}
}

func callerID(c *fiber.Ctx) string {
	userID, _ := authfiber.UserIDFromContext(c)
	return userID
}
