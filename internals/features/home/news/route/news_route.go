package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/home/news/controller"
	"schoolsite_backend/internals/features/home/news/service"
)

// NewsRoutes: /news (GET publik lewat FallbackReader, tulis lewat NewsService).
func NewsRoutes(api fiber.Router, db *gorm.DB, snapshotPath string, log *zap.Logger) {
	svc := service.NewNewsService(db)
	reader := service.NewFallbackReader(svc, service.NewSnapshotSource(snapshotPath), log)
	ctrl := controller.NewNewsController(svc, reader, log)

	news := api.Group("/news")
	news.Get("/", ctrl.Get)       // 📄 list / ?id= / ?slug=
	news.Post("/", ctrl.Create)   // ➕ buat berita
	news.Put("/", ctrl.Update)    // 🔄 partial update (id di body)
	news.Delete("/", ctrl.Delete) // 🗑️ hapus (?id=)
}
