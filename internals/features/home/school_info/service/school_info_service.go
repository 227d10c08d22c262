package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/repository"
	"schoolsite_backend/internals/features/home/school_info/dto"
	"schoolsite_backend/internals/features/home/school_info/model"
	helper "schoolsite_backend/internals/helpers"
)

// SchoolInfoService: record singleton. Tulis selalu upsert di school_info_key, tidak pernah append.
type SchoolInfoService struct {
	repo      *repository.Repository[model.SchoolInfoModel]
	validator *validator.Validate
}

func NewSchoolInfoService(db *gorm.DB) *SchoolInfoService {
	return &SchoolInfoService{
		repo:      repository.New[model.SchoolInfoModel](db, "school_info", "school_info_id"),
		validator: helper.NewValidator(),
	}
}

// Get: record otoritatif (key = main). ErrNotFound kalau belum pernah diisi.
func (s *SchoolInfoService) Get(ctx context.Context) (*dto.SchoolInfoResponse, error) {
	m, err := s.repo.FindOne(ctx, "school_info_key", model.SingletonKey)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *SchoolInfoService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SchoolInfoResponse, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *SchoolInfoService) Upsert(ctx context.Context, req dto.UpsertSchoolInfoRequest) (*dto.SchoolInfoResponse, error) {
	req.Normalize()
	if err := req.Validate(s.validator); err != nil {
		return nil, database.Rejected("school_info.upsert", err)
	}
	m, err := s.repo.Upsert(ctx, req.ToModel(), []string{"school_info_key"}, dto.UpsertColumns, model.SingletonKey)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *SchoolInfoService) Update(ctx context.Context, id uuid.UUID, patch dto.PatchSchoolInfoRequest) (*dto.SchoolInfoResponse, error) {
	if err := patch.Validate(s.validator); err != nil {
		return nil, database.Rejected("school_info.update", err)
	}
	m, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *SchoolInfoService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
