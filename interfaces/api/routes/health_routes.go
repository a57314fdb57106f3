package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck ping dependency หนึ่งตัว
type HealthCheck func(ctx context.Context) error

func SetupHealthRoutes(app *fiber.App, appName string, checks map[string]HealthCheck) {
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		status := "ok"
		deps := fiber.Map{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = "degraded"
				deps[name] = err.Error()
				continue
			}
			deps[name] = "ok"
		}

		code := fiber.StatusOK
		if status != "ok" {
			code = fiber.StatusServiceUnavailable
		}

		return c.Status(code).JSON(fiber.Map{
			"status":       status,
			"service":      appName,
			"dependencies": deps,
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to " + appName,
			"version": "1.0.0",
			"docs":    "/api/v1",
			"health":  "/health",
		})
	})
}
