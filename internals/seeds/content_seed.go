package seeds

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	database "schoolsite_backend/internals/databases"
	achievementDTO "schoolsite_backend/internals/features/home/achievements/dto"
	achievementService "schoolsite_backend/internals/features/home/achievements/service"
	eventDTO "schoolsite_backend/internals/features/home/events/dto"
	eventService "schoolsite_backend/internals/features/home/events/service"
	facultyDTO "schoolsite_backend/internals/features/home/faculty/dto"
	facultyService "schoolsite_backend/internals/features/home/faculty/service"
	mediaDTO "schoolsite_backend/internals/features/home/media/dto"
	mediaService "schoolsite_backend/internals/features/home/media/service"
	newsDTO "schoolsite_backend/internals/features/home/news/dto"
	newsService "schoolsite_backend/internals/features/home/news/service"
	programDTO "schoolsite_backend/internals/features/home/programs/dto"
	programModel "schoolsite_backend/internals/features/home/programs/model"
	programService "schoolsite_backend/internals/features/home/programs/service"
	schoolInfoDTO "schoolsite_backend/internals/features/home/school_info/dto"
	schoolInfoService "schoolsite_backend/internals/features/home/school_info/service"
)

// Document: satu file JSON berisi semua koleksi (key = envelope key API).
type Document struct {
	SchoolInfo         *schoolInfoDTO.UpsertSchoolInfoRequest    `json:"schoolInfo"`
	Programs           []programDTO.CreateProgramRequest         `json:"programs"`
	AdditionalPrograms []programDTO.CreateProgramRequest         `json:"additionalPrograms"`
	News               []newsDTO.CreateNewsRequest               `json:"news"`
	Events             []eventDTO.CreateEventRequest             `json:"events"`
	Faculty            []facultyDTO.CreateFacultyRequest         `json:"faculty"`
	Achievements       []achievementDTO.CreateAchievementRequest `json:"achievements"`
	Media              []mediaDTO.CreateMediaRequest             `json:"media"`
}

// Report: jumlah record yang benar-benar diinsert per koleksi.
type Report map[string]int

func ReadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var doc Document
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &doc, nil
}

// SeedFromJSON: koleksi yang sudah berisi data dilewati; school info selalu di-upsert.
// Berita dengan slug yang sudah ada dilewati satu per satu.
func SeedFromJSON(ctx context.Context, db *gorm.DB, path string, log *zap.Logger) (Report, error) {
	log.Info("📥 Membaca file seed", zap.String("path", path))
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return Seed(ctx, db, doc, log)
}

func Seed(ctx context.Context, db *gorm.DB, doc *Document, log *zap.Logger) (Report, error) {
	report := Report{}

	if doc.SchoolInfo != nil {
		if _, err := schoolInfoService.NewSchoolInfoService(db).Upsert(ctx, *doc.SchoolInfo); err != nil {
			return report, fmt.Errorf("schoolInfo: %w", err)
		}
		report["schoolInfo"] = 1
	}

	core := programService.NewProgramService(db, programModel.ProgramCore)
	if err := seedIfEmpty(ctx, report, log, "programs", doc.Programs,
		func(ctx context.Context) (int, error) { rows, err := core.ListAll(ctx, 1); return len(rows), err },
		func(ctx context.Context, req programDTO.CreateProgramRequest) error { _, err := core.Create(ctx, req); return err },
	); err != nil {
		return report, err
	}

	additional := programService.NewProgramService(db, programModel.ProgramAdditional)
	if err := seedIfEmpty(ctx, report, log, "additionalPrograms", doc.AdditionalPrograms,
		func(ctx context.Context) (int, error) { rows, err := additional.ListAll(ctx, 1); return len(rows), err },
		func(ctx context.Context, req programDTO.CreateProgramRequest) error { _, err := additional.Create(ctx, req); return err },
	); err != nil {
		return report, err
	}

	news := newsService.NewNewsService(db)
	for i, req := range doc.News {
		if _, err := news.Create(ctx, req); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				log.Info("ℹ️ Berita sudah ada, dilewati", zap.String("title", req.Title))
				continue
			}
			return report, fmt.Errorf("news[%d]: %w", i, err)
		}
		report["news"]++
	}

	events := eventService.NewEventService(db)
	if err := seedIfEmpty(ctx, report, log, "events", doc.Events,
		func(ctx context.Context) (int, error) { rows, err := events.ListAll(ctx, 1); return len(rows), err },
		func(ctx context.Context, req eventDTO.CreateEventRequest) error { _, err := events.Create(ctx, req); return err },
	); err != nil {
		return report, err
	}

	faculty := facultyService.NewFacultyService(db)
	if err := seedIfEmpty(ctx, report, log, "faculty", doc.Faculty,
		func(ctx context.Context) (int, error) {
			rows, err := faculty.ListAll(ctx, facultyService.FacultyQuery{Limit: 1})
			return len(rows), err
		},
		func(ctx context.Context, req facultyDTO.CreateFacultyRequest) error { _, err := faculty.Create(ctx, req); return err },
	); err != nil {
		return report, err
	}

	achievements := achievementService.NewAchievementService(db)
	if len(doc.Achievements) > 0 {
		existing, err := achievements.ListAll(ctx, achievementService.AchievementQuery{Limit: 1})
		if err != nil {
			return report, fmt.Errorf("achievements: %w", err)
		}
		if len(existing) == 0 {
			if _, err := achievements.ReplaceAll(ctx, doc.Achievements); err != nil {
				return report, fmt.Errorf("achievements: %w", err)
			}
			report["achievements"] = len(doc.Achievements)
		} else {
			log.Info("ℹ️ Koleksi sudah berisi data, dilewati", zap.String("collection", "achievements"))
		}
	}

	media := mediaService.NewMediaService(db)
	if err := seedIfEmpty(ctx, report, log, "media", doc.Media,
		func(ctx context.Context) (int, error) {
			rows, err := media.ListAll(ctx, mediaService.MediaQuery{Limit: 1})
			return len(rows), err
		},
		func(ctx context.Context, req mediaDTO.CreateMediaRequest) error { _, err := media.Create(ctx, req); return err },
	); err != nil {
		return report, err
	}

	return report, nil
}

func seedIfEmpty[T any](
	ctx context.Context,
	report Report,
	log *zap.Logger,
	collection string,
	items []T,
	count func(context.Context) (int, error),
	create func(context.Context, T) error,
) error {
	if len(items) == 0 {
		return nil
	}
	n, err := count(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", collection, err)
	}
	if n > 0 {
		log.Info("ℹ️ Koleksi sudah berisi data, dilewati", zap.String("collection", collection))
		return nil
	}
	for i, item := range items {
		if err := create(ctx, item); err != nil {
			return fmt.Errorf("%s[%d]: %w", collection, i, err)
		}
		report[collection]++
	}
	return nil
}
