package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/repository"
	"schoolsite_backend/internals/features/home/events/dto"
	"schoolsite_backend/internals/features/home/events/model"
	helper "schoolsite_backend/internals/helpers"
)

type EventService struct {
	repo      *repository.Repository[model.EventModel]
	validator *validator.Validate
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		repo:      repository.New[model.EventModel](db, "events", "event_id"),
		validator: helper.NewValidator(),
	}
}

func (s *EventService) list(ctx context.Context, publishedOnly bool, limit int) ([]dto.EventResponse, error) {
	opts := repository.ListOptions{
		OrderBy: []repository.Order{
			repository.Asc("event_date"),
			repository.Asc("event_created_at"),
		},
		Limit: limit,
	}
	if publishedOnly {
		opts.Filters = append(opts.Filters, repository.Eq("event_published", true))
	}
	rows, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

func (s *EventService) ListPublished(ctx context.Context, limit int) ([]dto.EventResponse, error) {
	return s.list(ctx, true, limit)
}

func (s *EventService) ListAll(ctx context.Context, limit int) ([]dto.EventResponse, error) {
	return s.list(ctx, false, limit)
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

// GetPublished: detail untuk publik; draft dianggap tidak ada.
func (s *EventService) GetPublished(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error) {
	m, err := s.repo.Scoped(repository.Eq("event_published", true)).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	req.Normalize()
	if err := req.Validate(s.validator); err != nil {
		return nil, database.Rejected("events.create", err)
	}
	m := req.ToModel()
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *EventService) Update(ctx context.Context, id uuid.UUID, patch dto.PatchEventRequest) (*dto.EventResponse, error) {
	if err := patch.Validate(); err != nil {
		return nil, database.Rejected("events.update", err)
	}
	m, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
