package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/repository"
	"schoolsite_backend/internals/features/home/news/dto"
	"schoolsite_backend/internals/features/home/news/model"
	helper "schoolsite_backend/internals/helpers"
)

// NewsQuery: filter/sort/limit yang sama untuk jalur primary & snapshot.
type NewsQuery struct {
	IncludeUnpublished bool
	Category           *string
	Featured           *bool
	Limit              int
}

type NewsService struct {
	repo      *repository.Repository[model.NewsModel]
	validator *validator.Validate
}

func NewNewsService(db *gorm.DB) *NewsService {
	return &NewsService{
		repo:      repository.New[model.NewsModel](db, "news", "news_id"),
		validator: helper.NewValidator(),
	}
}

func (s *NewsService) listOptions(q NewsQuery) repository.ListOptions {
	opts := repository.ListOptions{
		OrderBy: []repository.Order{
			repository.Desc("news_published_at"),
			repository.Desc("news_created_at"),
		},
		Limit: q.Limit,
	}
	if !q.IncludeUnpublished {
		opts.Filters = append(opts.Filters, repository.Eq("news_published", true))
	}
	if q.Category != nil {
		opts.Filters = append(opts.Filters, repository.Eq("news_category", strings.TrimSpace(*q.Category)))
	}
	if q.Featured != nil {
		opts.Filters = append(opts.Filters, repository.Eq("news_featured", *q.Featured))
	}
	return opts
}

// FetchNews: implementasi NewsSource jalur primary.
func (s *NewsService) FetchNews(ctx context.Context, q NewsQuery) ([]dto.NewsResponse, error) {
	rows, err := s.repo.List(ctx, s.listOptions(q))
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

func (s *NewsService) ListPublished(ctx context.Context, q NewsQuery) ([]dto.NewsResponse, error) {
	q.IncludeUnpublished = false
	return s.FetchNews(ctx, q)
}

// ListAll: tanpa filter published, khusus admin.
func (s *NewsService) ListAll(ctx context.Context, q NewsQuery) ([]dto.NewsResponse, error) {
	q.IncludeUnpublished = true
	return s.FetchNews(ctx, q)
}

func (s *NewsService) GetByID(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

// GetPublished: detail untuk publik; draft dianggap tidak ada.
func (s *NewsService) GetPublished(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	m, err := s.repo.Scoped(repository.Eq("news_published", true)).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*dto.NewsResponse, error) {
	m, err := s.repo.FindOne(ctx, "news_slug", helper.GenerateSlug(slug))
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *NewsService) GetPublishedBySlug(ctx context.Context, slug string) (*dto.NewsResponse, error) {
	m, err := s.repo.Scoped(repository.Eq("news_published", true)).FindOne(ctx, "news_slug", helper.GenerateSlug(slug))
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *NewsService) Create(ctx context.Context, req dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	req.Normalize()
	if err := req.Validate(s.validator); err != nil {
		return nil, database.Rejected("news.create", err)
	}
	if req.Slug == "" {
		return nil, database.Rejected("news.create", helper.FieldError("slug", "required"))
	}

	m := req.ToModel()
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *NewsService) Update(ctx context.Context, id uuid.UUID, patch dto.PatchNewsRequest) (*dto.NewsResponse, error) {
	if err := patch.Validate(); err != nil {
		return nil, database.Rejected("news.update", err)
	}
	m, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
