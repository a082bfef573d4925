package fiber

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"coachline.com/backoffice/auth"
	"coachline.com/backoffice/metrics"
)

// Locals keys set by the guards.
const (
	LocalUserID = "user_id"
)

// Guard turns Authorizer answers into fiber middleware.
type Guard struct {
	authz   auth.Authorizer
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewGuard creates a guard. m may be nil.
func NewGuard(authz auth.Authorizer, log zerolog.Logger, m *metrics.Metrics) *Guard {
	return &Guard{
		authz:   authz,
		log:     log.With().Str("component", "guard").Logger(),
		metrics: m,
	}
}

// RequireAuthenticated rejects callers without a subject claim.
func (g *Guard) RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := g.authz.UserID(c)
		if !ok {
			g.metrics.RecordDecision("", metrics.OutcomeUnauthenticated)
			g.log.Info().Str("path", c.Path()).Msg("rejected unauthenticated request")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": auth.ErrUnauthenticated.Message,
			})
		}

		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// RequireAdminOr lets administrators and holders of permission through.
// Everyone else gets 403 and the next handler never runs.
func (g *Guard) RequireAdminOr(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !g.authz.IsAdmin(c) && !g.authz.HasPermission(c, permission) {
			g.metrics.RecordDecision(permission, metrics.OutcomeDenied)
			g.log.Warn().
				Str("permission", permission).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("forbidden")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": auth.ErrForbidden.Message,
			})
		}

		g.metrics.RecordDecision(permission, metrics.OutcomeAllowed)
		if userID, ok := g.authz.UserID(c); ok {
			c.Locals(LocalUserID, userID)
		}
		return c.Next()
	}
}

// UserIDFromContext returns the caller id stored by a guard.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(LocalUserID).(string)
	return userID, ok && userID != ""
}
