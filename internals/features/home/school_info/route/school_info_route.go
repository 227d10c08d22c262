package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/home/school_info/controller"
	"schoolsite_backend/internals/features/home/school_info/service"
)

func SchoolInfoRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctrl := controller.NewSchoolInfoController(service.NewSchoolInfoService(db), log)

	info := api.Group("/school-info")
	info.Get("/", ctrl.Get)       // 🏫 singleton
	info.Post("/", ctrl.Upsert)   // ♻️ upsert
	info.Put("/", ctrl.Update)    // 🔄 partial (id di body)
	info.Delete("/", ctrl.Delete) // 🗑️
}
