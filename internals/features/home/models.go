package home

import (
	achievementModel "schoolsite_backend/internals/features/home/achievements/model"
	eventModel "schoolsite_backend/internals/features/home/events/model"
	facultyModel "schoolsite_backend/internals/features/home/faculty/model"
	mediaModel "schoolsite_backend/internals/features/home/media/model"
	newsModel "schoolsite_backend/internals/features/home/news/model"
	programModel "schoolsite_backend/internals/features/home/programs/model"
	schoolInfoModel "schoolsite_backend/internals/features/home/school_info/model"
)

// Models: semua tabel konten, dipakai AutoMigrate (main & cmd/admin migrate).
func Models() []any {
	return []any{
		&schoolInfoModel.SchoolInfoModel{},
		&programModel.ProgramModel{},
		&newsModel.NewsModel{},
		&eventModel.EventModel{},
		&facultyModel.FacultyModel{},
		&achievementModel.AchievementModel{},
		&mediaModel.MediaModel{},
	}
}
