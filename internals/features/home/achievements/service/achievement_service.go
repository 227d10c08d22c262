package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/repository"
	"schoolsite_backend/internals/features/home/achievements/dto"
	"schoolsite_backend/internals/features/home/achievements/model"
	helper "schoolsite_backend/internals/helpers"
)

type AchievementQuery struct {
	Featured *bool
	Limit    int
}

type AchievementService struct {
	repo      *repository.Repository[model.AchievementModel]
	validator *validator.Validate
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{
		repo:      repository.New[model.AchievementModel](db, "achievements", "achievement_id"),
		validator: helper.NewValidator(),
	}
}

var displayOrder = []repository.Order{
	repository.Asc("achievement_display_order"),
	repository.Asc("achievement_created_at"),
}

// ListPublished: achievement tidak punya flag published, jadi publik = semua.
func (s *AchievementService) ListPublished(ctx context.Context, q AchievementQuery) ([]dto.AchievementResponse, error) {
	return s.ListAll(ctx, q)
}

func (s *AchievementService) ListAll(ctx context.Context, q AchievementQuery) ([]dto.AchievementResponse, error) {
	opts := repository.ListOptions{OrderBy: displayOrder, Limit: q.Limit}
	if q.Featured != nil {
		opts.Filters = append(opts.Filters, repository.Eq("achievement_featured", *q.Featured))
	}
	rows, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

func (s *AchievementService) GetByID(ctx context.Context, id uuid.UUID) (*dto.AchievementResponse, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

// nextDisplayOrder: posisi setelah item terakhir.
func (s *AchievementService) nextDisplayOrder(ctx context.Context) (int, error) {
	rows, err := s.repo.List(ctx, repository.ListOptions{
		OrderBy: []repository.Order{repository.Desc("achievement_display_order")},
		Limit:   1,
	})
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].AchievementDisplayOrder + 1, nil
}

func (s *AchievementService) Create(ctx context.Context, req dto.CreateAchievementRequest) (*dto.AchievementResponse, error) {
	req.Normalize()
	if err := req.Validate(s.validator); err != nil {
		return nil, database.Rejected("achievements.create", err)
	}

	order := 0
	if req.DisplayOrder == nil {
		next, err := s.nextDisplayOrder(ctx)
		if err != nil {
			return nil, err
		}
		order = next
	}

	m := req.ToModel(order)
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	out := dto.FromModel(&m)
	return &out, nil
}

// ReplaceAll: hapus semua lalu insert ulang (tidak atomik). Semua item divalidasi dulu
// supaya input yang jelas salah tidak sempat menghapus data.
func (s *AchievementService) ReplaceAll(ctx context.Context, items []dto.CreateAchievementRequest) ([]dto.AchievementResponse, error) {
	rows := make([]model.AchievementModel, 0, len(items))
	for i := range items {
		items[i].Normalize()
		if err := items[i].Validate(s.validator); err != nil {
			return nil, database.Rejected("achievements.replace", fmt.Errorf("achievements[%d]: %w", i, err))
		}
		rows = append(rows, items[i].ToModel(i))
	}

	if _, err := s.repo.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.CreateMany(ctx, rows); err != nil {
		return nil, err
	}
	return s.ListAll(ctx, AchievementQuery{})
}

func (s *AchievementService) Update(ctx context.Context, id uuid.UUID, patch dto.PatchAchievementRequest) (*dto.AchievementResponse, error) {
	if err := patch.Validate(); err != nil {
		return nil, database.Rejected("achievements.update", err)
	}
	m, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *AchievementService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
