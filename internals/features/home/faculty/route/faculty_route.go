package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/home/faculty/controller"
	"schoolsite_backend/internals/features/home/faculty/service"
)

func FacultyRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctrl := controller.NewFacultyController(service.NewFacultyService(db), log)

	faculty := api.Group("/faculty")
	faculty.Get("/", ctrl.Get)       // 👩‍🏫 list / ?id= / ?department=
	faculty.Post("/", ctrl.Create)   // ➕
	faculty.Put("/", ctrl.Update)    // 🔄
	faculty.Delete("/", ctrl.Delete) // 🗑️
}
