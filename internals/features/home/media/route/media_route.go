package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/home/media/controller"
	"schoolsite_backend/internals/features/home/media/service"
)

// uploader boleh nil (OSS belum dikonfigurasi).
func MediaRoutes(api fiber.Router, db *gorm.DB, uploader controller.Uploader, log *zap.Logger) {
	ctrl := controller.NewMediaController(service.NewMediaService(db), uploader, log)

	media := api.Group("/media")
	media.Get("/", ctrl.Get)
	media.Post("/", ctrl.Create)
	media.Post("/upload", ctrl.Upload) // 📤 multipart → OSS (webp)
	media.Put("/", ctrl.Update)
	media.Delete("/", ctrl.Delete)
}
