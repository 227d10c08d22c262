package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/middlewares/metrics"
)

// startedAt: dipakai /health untuk uptime.
func BaseRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, startedAt time.Time) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("School site content API 🚀")
	})

	app.Get("/metrics", metrics.Handler())

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if err := database.Ping(ctx, db); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startedAt).Seconds()),
			"environment":    cfg.AppEnv,
		})
	})
}
