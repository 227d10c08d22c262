package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/repository"
	"schoolsite_backend/internals/features/home/faculty/dto"
	"schoolsite_backend/internals/features/home/faculty/model"
	helper "schoolsite_backend/internals/helpers"
)

type FacultyQuery struct {
	Department *string // teks bebas, dinormalkan ke kode
	Featured   *bool
	Limit      int
}

type FacultyService struct {
	repo      *repository.Repository[model.FacultyModel]
	validator *validator.Validate
}

func NewFacultyService(db *gorm.DB) *FacultyService {
	return &FacultyService{
		repo:      repository.New[model.FacultyModel](db, "faculty", "faculty_id"),
		validator: helper.NewValidator(),
	}
}

func (s *FacultyService) list(ctx context.Context, publishedOnly bool, q FacultyQuery) ([]dto.FacultyResponse, error) {
	opts := repository.ListOptions{
		OrderBy: []repository.Order{
			repository.Asc("faculty_grade"),
			repository.Asc("faculty_name"),
		},
		Limit: q.Limit,
	}
	if publishedOnly {
		opts.Filters = append(opts.Filters, repository.Eq("faculty_published", true))
	}
	if q.Department != nil {
		d, ok := model.NormalizeDepartment(*q.Department)
		if !ok {
			return nil, database.Rejected("faculty.list", helper.FieldError("department", "oneof"))
		}
		opts.Filters = append(opts.Filters, repository.Eq("faculty_department", string(d)))
	}
	if q.Featured != nil {
		opts.Filters = append(opts.Filters, repository.Eq("faculty_featured", *q.Featured))
	}

	rows, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

func (s *FacultyService) ListPublished(ctx context.Context, q FacultyQuery) ([]dto.FacultyResponse, error) {
	return s.list(ctx, true, q)
}

func (s *FacultyService) ListAll(ctx context.Context, q FacultyQuery) ([]dto.FacultyResponse, error) {
	return s.list(ctx, false, q)
}

func (s *FacultyService) GetByID(ctx context.Context, id uuid.UUID) (*dto.FacultyResponse, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

// GetPublished: detail untuk publik; draft dianggap tidak ada.
func (s *FacultyService) GetPublished(ctx context.Context, id uuid.UUID) (*dto.FacultyResponse, error) {
	m, err := s.repo.Scoped(repository.Eq("faculty_published", true)).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *FacultyService) Create(ctx context.Context, req dto.CreateFacultyRequest) (*dto.FacultyResponse, error) {
	req.Normalize()
	if err := req.Validate(s.validator); err != nil {
		return nil, database.Rejected("faculty.create", err)
	}
	m := req.ToModel()
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *FacultyService) Update(ctx context.Context, id uuid.UUID, patch dto.PatchFacultyRequest) (*dto.FacultyResponse, error) {
	if err := patch.Validate(s.validator); err != nil {
		return nil, database.Rejected("faculty.update", err)
	}
	m, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *FacultyService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
