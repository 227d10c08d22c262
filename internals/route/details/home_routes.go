package details

import (
	AchievementRoutes "schoolsite_backend/internals/features/home/achievements/route"
	EventRoutes "schoolsite_backend/internals/features/home/events/route"
	FacultyRoutes "schoolsite_backend/internals/features/home/faculty/route"
	MediaController "schoolsite_backend/internals/features/home/media/controller"
	MediaRoutes "schoolsite_backend/internals/features/home/media/route"
	NewsRoutes "schoolsite_backend/internals/features/home/news/route"
	ProgramRoutes "schoolsite_backend/internals/features/home/programs/route"
	SchoolInfoRoutes "schoolsite_backend/internals/features/home/school_info/route"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
)

// ✅ Semua konten website sekolah
// Contoh akses: /api/news, /api/programs, /api/school-info
func HomeRoutes(api fiber.Router, db *gorm.DB, cfg configs.Config, uploader MediaController.Uploader, log *zap.Logger) {
	SchoolInfoRoutes.SchoolInfoRoutes(api, db, log)
	ProgramRoutes.ProgramRoutes(api, db, log) // /programs + /additional-programs
	NewsRoutes.NewsRoutes(api, db, cfg.NewsSnapshotPath, log)
	EventRoutes.EventRoutes(api, db, log)
	FacultyRoutes.FacultyRoutes(api, db, log)
	AchievementRoutes.AchievementRoutes(api, db, log)
	MediaRoutes.MediaRoutes(api, db, uploader, log)
}
