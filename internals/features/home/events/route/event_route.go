package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/home/events/controller"
	"schoolsite_backend/internals/features/home/events/service"
)

func EventRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctrl := controller.NewEventController(service.NewEventService(db), log)

	events := api.Group("/events")
	events.Get("/", ctrl.Get)
	events.Post("/", ctrl.Create)
	events.Put("/", ctrl.Update)
	events.Delete("/", ctrl.Delete)
}
