package middlewares

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// RecoveryMiddleware menangkap panic; stack dicatat lewat zap,
// response-nya tetap 500 JSON dari ErrorHandler.
func RecoveryMiddleware(log *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("💥 panic",
				zap.Any("panic", e),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Any("request_id", c.Locals("requestid")),
				zap.ByteString("stack", debug.Stack()),
			)
		},
	})
}
