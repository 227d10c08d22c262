package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/home/achievements/controller"
	"schoolsite_backend/internals/features/home/achievements/service"
)

func AchievementRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctrl := controller.NewAchievementController(service.NewAchievementService(db), log)

	achievements := api.Group("/achievements")
	achievements.Get("/", ctrl.Get)       // 🏆 list urut displayOrder
	achievements.Post("/", ctrl.Post)     // ➕ create | ♻️ replace
	achievements.Put("/", ctrl.Update)    // 🔄
	achievements.Delete("/", ctrl.Delete) // 🗑️
}
