package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"schoolsite_backend/internals/configs"
	"schoolsite_backend/internals/middlewares/logger"
	"schoolsite_backend/internals/middlewares/metrics"
)

// SetupMiddlewares: urutan penting (recover paling luar, timeout paling dalam).
func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *zap.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(RequestID())
	app.Use(logger.LoggerMiddleware(log))
	app.Use(metrics.Middleware())
	app.Use(CorsMiddleware(cfg.CORSAllowOrigins))
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
	app.Use(Timeout(cfg.RequestTimeout))
}
