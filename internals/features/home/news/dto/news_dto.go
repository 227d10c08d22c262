package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"schoolsite_backend/internals/features/home/news/model"
	helper "schoolsite_backend/internals/helpers"
)

// ============================
// Response DTO (wire = camelCase)
// ============================

type NewsResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TitleLocal    *string   `json:"titleLocal,omitempty"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	FeaturedImage *string   `json:"featuredImage,omitempty"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Author        string    `json:"author"`
	Featured      bool      `json:"featured"`
	Published     bool      `json:"published"`
	PublishedAt   time.Time `json:"publishedAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromModel(m *model.NewsModel) NewsResponse {
	return NewsResponse{
		ID:            m.NewsID.String(),
		Title:         m.NewsTitle,
		TitleLocal:    m.NewsTitleLocal,
		Slug:          m.NewsSlug,
		Excerpt:       m.NewsExcerpt,
		Content:       m.NewsContent,
		FeaturedImage: m.NewsFeaturedImage,
		Category:      m.NewsCategory,
		Tags:          helper.ToStrings(m.NewsTags),
		Author:        m.NewsAuthor,
		Featured:      m.NewsFeatured,
		Published:     m.NewsPublished,
		PublishedAt:   m.NewsPublishedAt,
		CreatedAt:     m.NewsCreatedAt,
		UpdatedAt:     m.NewsUpdatedAt,
	}
}

func FromModels(rows []model.NewsModel) []NewsResponse {
	out := make([]NewsResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

// ============================
// Create
// ============================

type CreateNewsRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	TitleLocal    *string    `json:"titleLocal" validate:"omitempty,max=255"`
	Slug          string     `json:"slug" validate:"omitempty,max=255"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content" validate:"required"`
	FeaturedImage *string    `json:"featuredImage"`
	Category      string     `json:"category" validate:"max=100"`
	Tags          []string   `json:"tags"`
	Author        string     `json:"author" validate:"max=150"`
	Featured      bool       `json:"featured"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// Normalize: trim + slug diturunkan dari judul kalau kosong.
func (r *CreateNewsRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.TitleLocal = helper.TrimPtr(r.TitleLocal)
	r.Excerpt = strings.TrimSpace(r.Excerpt)
	r.FeaturedImage = helper.TrimPtr(r.FeaturedImage)
	r.Category = strings.TrimSpace(r.Category)
	r.Author = strings.TrimSpace(r.Author)

	if strings.TrimSpace(r.Slug) == "" {
		r.Slug = helper.GenerateSlug(r.Title)
	} else {
		r.Slug = helper.GenerateSlug(r.Slug)
	}
}

func (r *CreateNewsRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateNewsRequest) ToModel() *model.NewsModel {
	m := &model.NewsModel{
		NewsTitle:         r.Title,
		NewsTitleLocal:    r.TitleLocal,
		NewsSlug:          r.Slug,
		NewsExcerpt:       r.Excerpt,
		NewsContent:       r.Content,
		NewsFeaturedImage: r.FeaturedImage,
		NewsCategory:      r.Category,
		NewsTags:          helper.StringList(r.Tags),
		NewsAuthor:        r.Author,
		NewsFeatured:      r.Featured,
		NewsPublished:     r.Published,
	}
	if r.PublishedAt != nil {
		m.NewsPublishedAt = *r.PublishedAt
	}
	return m
}

// ============================
// Update (partial, tri-state)
// ============================

type PatchNewsRequest struct {
	ID            string                       `json:"id"`
	Title         helper.PatchField[string]    `json:"title"`
	TitleLocal    helper.PatchField[string]    `json:"titleLocal"`
	Slug          helper.PatchField[string]    `json:"slug"`
	Excerpt       helper.PatchField[string]    `json:"excerpt"`
	Content       helper.PatchField[string]    `json:"content"`
	FeaturedImage helper.PatchField[string]    `json:"featuredImage"`
	Category      helper.PatchField[string]    `json:"category"`
	Tags          helper.PatchField[[]string]  `json:"tags"`
	Author        helper.PatchField[string]    `json:"author"`
	Featured      helper.PatchField[bool]      `json:"featured"`
	Published     helper.PatchField[bool]      `json:"published"`
	PublishedAt   helper.PatchField[time.Time] `json:"publishedAt"`
}

// Validate: hanya field yang dikirim.
func (p *PatchNewsRequest) Validate() error {
	if v, ok := p.Title.Get(); ok && (v == nil || strings.TrimSpace(*v) == "") {
		return helper.FieldError("title", "required")
	}
	if v, ok := p.Content.Get(); ok && (v == nil || strings.TrimSpace(*v) == "") {
		return helper.FieldError("content", "required")
	}
	if v, ok := p.Slug.Get(); ok && (v == nil || helper.GenerateSlug(*v) == "") {
		return helper.FieldError("slug", "required")
	}
	return nil
}

// Columns: wire → kolom storage, hanya untuk key yang ada di body.
func (p *PatchNewsRequest) Columns() helper.PatchColumns {
	cols := helper.PatchColumns{}
	helper.PutMapped(cols, "news_title", p.Title, func(s string) any { return strings.TrimSpace(s) })
	helper.Put(cols, "news_title_local", p.TitleLocal)
	helper.PutMapped(cols, "news_slug", p.Slug, func(s string) any { return helper.GenerateSlug(s) })
	helper.PutMapped(cols, "news_excerpt", p.Excerpt, func(s string) any { return strings.TrimSpace(s) })
	helper.PutRequired(cols, "news_content", p.Content)
	helper.Put(cols, "news_featured_image", p.FeaturedImage)
	helper.PutMapped(cols, "news_category", p.Category, func(s string) any { return strings.TrimSpace(s) })
	helper.PutMapped(cols, "news_tags", p.Tags, func(t []string) any { return helper.StringList(t) })
	helper.PutMapped(cols, "news_author", p.Author, func(s string) any { return strings.TrimSpace(s) })
	helper.PutRequired(cols, "news_featured", p.Featured)
	helper.PutRequired(cols, "news_published", p.Published)
	helper.PutRequired(cols, "news_published_at", p.PublishedAt)
	return cols
}
