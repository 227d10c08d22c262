package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/repository"
	"schoolsite_backend/internals/features/home/media/dto"
	"schoolsite_backend/internals/features/home/media/model"
	helper "schoolsite_backend/internals/helpers"
)

type MediaQuery struct {
	Folder       *string
	ResourceType *string
	Limit        int
}

type MediaService struct {
	repo      *repository.Repository[model.MediaModel]
	validator *validator.Validate
}

func NewMediaService(db *gorm.DB) *MediaService {
	return &MediaService{
		repo:      repository.New[model.MediaModel](db, "media", "media_id"),
		validator: helper.NewValidator(),
	}
}

// ListPublished: media tidak punya flag published.
func (s *MediaService) ListPublished(ctx context.Context, q MediaQuery) ([]dto.MediaResponse, error) {
	return s.ListAll(ctx, q)
}

func (s *MediaService) ListAll(ctx context.Context, q MediaQuery) ([]dto.MediaResponse, error) {
	opts := repository.ListOptions{
		OrderBy: []repository.Order{repository.Asc("media_created_at")},
		Limit:   q.Limit,
	}
	if q.Folder != nil {
		opts.Filters = append(opts.Filters, repository.Eq("media_folder", strings.Trim(*q.Folder, "/")))
	}
	if q.ResourceType != nil {
		opts.Filters = append(opts.Filters, repository.Eq("media_resource_type", strings.ToLower(*q.ResourceType)))
	}
	rows, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

func (s *MediaService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MediaResponse, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *MediaService) Create(ctx context.Context, req dto.CreateMediaRequest) (*dto.MediaResponse, error) {
	req.Normalize()
	if err := req.Validate(s.validator); err != nil {
		return nil, database.Rejected("media.create", err)
	}
	m := req.ToModel()
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *MediaService) Update(ctx context.Context, id uuid.UUID, patch dto.PatchMediaRequest) (*dto.MediaResponse, error) {
	if err := patch.Validate(s.validator); err != nil {
		return nil, database.Rejected("media.update", err)
	}
	m, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
