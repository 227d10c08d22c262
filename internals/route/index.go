// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
	mediaController "schoolsite_backend/internals/features/home/media/controller"
	"schoolsite_backend/internals/middlewares"
	routeDetails "schoolsite_backend/internals/route/details"
)

// SetupRoutes: uploader nil → POST /api/media/upload membalas 503.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, uploader mediaController.Uploader, log *zap.Logger) {
	log.Info("Setting up BaseRoutes...")
	BaseRoutes(app, db, cfg, time.Now())

	// ===================== CONTENT API =====================
	app.Use("/api/media/upload", middlewares.UploadRateLimiter())

	log.Info("Mounting Home routes under /api...")
	api := app.Group("/api")
	routeDetails.HomeRoutes(api, db, cfg, uploader, log)
}
