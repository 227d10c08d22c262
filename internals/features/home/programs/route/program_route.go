package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/home/programs/controller"
	"schoolsite_backend/internals/features/home/programs/model"
	"schoolsite_backend/internals/features/home/programs/service"
)

// ProgramRoutes: /programs (core) + /additional-programs, satu tabel dibedakan program_type.
func ProgramRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	mount(api.Group("/programs"),
		controller.NewProgramController(service.NewProgramService(db, model.ProgramCore), "programs", "program", log))
	mount(api.Group("/additional-programs"),
		controller.NewProgramController(service.NewProgramService(db, model.ProgramAdditional), "additionalPrograms", "additional program", log))
}

func mount(g fiber.Router, ctrl *controller.ProgramController) {
	g.Get("/", ctrl.Get)       // 📄 list / ?id=
	g.Post("/", ctrl.Create)   // ➕ buat
	g.Put("/", ctrl.Update)    // 🔄 partial update
	g.Delete("/", ctrl.Delete) // 🗑️ hapus
}
