// Package api exposes the back-office resources over HTTP.
package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"coachline.com/backoffice/auth"
	"coachline.com/backoffice/metrics"
	"coachline.com/backoffice/pg/model"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Jobs        model.JobStore
	Maintenance model.MaintenanceStore
	Permissions model.PermissionStore
	Roles       model.RoleStore
	Authorizer  auth.Authorizer
	Metrics     *metrics.Metrics
	Log         zerolog.Logger
	ServiceName string
}

// NewApp builds the fiber application with every route registered.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               d.ServiceName,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(d.Log),
	})

	app.Use(recover.New())
	app.Use(requestDuration(d.Metrics))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(d.Metrics.Handler()))
	}

	SetupRoutes(app, d)
	return app
}

// errorHandler renders errors that escape a handler as {"error": ...}.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("unhandled error")
		}
		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}

func requestDuration(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		m.ObserveRequest(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start).Seconds())
		return err
	}
}
