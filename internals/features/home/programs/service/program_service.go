package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/repository"
	"schoolsite_backend/internals/features/home/programs/dto"
	"schoolsite_backend/internals/features/home/programs/model"
	helper "schoolsite_backend/internals/helpers"
)

// ProgramService melayani satu jenis program (core / additional); tabelnya sama.
type ProgramService struct {
	repo      *repository.Repository[model.ProgramModel]
	kind      model.ProgramType
	validator *validator.Validate
}

func NewProgramService(db *gorm.DB, kind model.ProgramType) *ProgramService {
	return &ProgramService{
		repo: repository.New[model.ProgramModel](db, "programs", "program_id").
			Scoped(repository.Eq("program_type", string(kind))),
		kind:      kind,
		validator: helper.NewValidator(),
	}
}

func (s *ProgramService) list(ctx context.Context, publishedOnly bool, limit int) ([]dto.ProgramResponse, error) {
	opts := repository.ListOptions{
		OrderBy: []repository.Order{repository.Asc("program_created_at")},
		Limit:   limit,
	}
	if publishedOnly {
		opts.Filters = append(opts.Filters, repository.Eq("program_published", true))
	}
	rows, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

func (s *ProgramService) ListPublished(ctx context.Context, limit int) ([]dto.ProgramResponse, error) {
	return s.list(ctx, true, limit)
}

func (s *ProgramService) ListAll(ctx context.Context, limit int) ([]dto.ProgramResponse, error) {
	return s.list(ctx, false, limit)
}

func (s *ProgramService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProgramResponse, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

// GetPublished: detail untuk publik; draft dianggap tidak ada.
func (s *ProgramService) GetPublished(ctx context.Context, id uuid.UUID) (*dto.ProgramResponse, error) {
	m, err := s.repo.Scoped(repository.Eq("program_published", true)).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *ProgramService) Create(ctx context.Context, req dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	req.Normalize()
	if err := req.Validate(s.validator); err != nil {
		return nil, database.Rejected("programs.create", err)
	}
	m := req.ToModel(s.kind)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *ProgramService) Update(ctx context.Context, id uuid.UUID, patch dto.PatchProgramRequest) (*dto.ProgramResponse, error) {
	if err := patch.Validate(); err != nil {
		return nil, database.Rejected("programs.update", err)
	}
	m, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *ProgramService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
