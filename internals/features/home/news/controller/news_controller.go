package controller

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/home/news/dto"
	"schoolsite_backend/internals/features/home/news/service"
	helper "schoolsite_backend/internals/helpers"
)

const envelopeKey = "news"

type newsService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.NewsResponse, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*dto.NewsResponse, error)
	Create(ctx context.Context, req dto.CreateNewsRequest) (*dto.NewsResponse, error)
	Update(ctx context.Context, id uuid.UUID, patch dto.PatchNewsRequest) (*dto.NewsResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NewsController struct {
	svc    newsService
	reader service.NewsSource
	log    *zap.Logger
}

func NewNewsController(svc newsService, reader service.NewsSource, log *zap.Logger) *NewsController {
	return &NewsController{svc: svc, reader: reader, log: log}
}

/*
=========================================================

	GET /api/news
	Query: id | slug | all, category, featured, limit
	(tanpa all=true, detail draft → 404)
	=========================================================
*/
func (ctl *NewsController) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if raw := c.Query("id"); raw != "" {
		id, err := helper.ParseID(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
		getOne := ctl.svc.GetPublished
		if helper.QueryFlag(c, "all") {
			getOne = ctl.svc.GetByID
		}
		item, err := getOne(ctx, id)
		if err != nil {
			return helper.WriteServiceError(c, ctl.log, envelopeKey, err)
		}
		return helper.JsonOK(c, envelopeKey, item)
	}

	if slug := helper.QueryString(c, "slug"); slug != nil {
		getOne := ctl.svc.GetPublishedBySlug
		if helper.QueryFlag(c, "all") {
			getOne = ctl.svc.GetBySlug
		}
		item, err := getOne(ctx, *slug)
		if err != nil {
			return helper.WriteServiceError(c, ctl.log, envelopeKey, err)
		}
		return helper.JsonOK(c, envelopeKey, item)
	}

	q := service.NewsQuery{
		IncludeUnpublished: helper.QueryFlag(c, "all"),
		Category:           helper.QueryString(c, "category"),
	}
	featured, err := helper.QueryBool(c, "featured")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Featured = featured
	if q.Limit, err = helper.QueryLimit(c); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	items, err := ctl.reader.FetchNews(ctx, q)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, envelopeKey, err)
	}
	return helper.JsonOK(c, envelopeKey, items)
}

// POST /api/news
func (ctl *NewsController) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	item, err := ctl.svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, envelopeKey, err)
	}
	return helper.JsonCreated(c, envelopeKey, item)
}

// PUT /api/news  (body wajib punya "id")
func (ctl *NewsController) Update(c *fiber.Ctx) error {
	var req dto.PatchNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	id, err := helper.ParseID(req.ID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	item, err := ctl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, envelopeKey, err)
	}
	return helper.JsonOK(c, envelopeKey, item)
}

// DELETE /api/news?id=
func (ctl *NewsController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.WriteServiceError(c, ctl.log, envelopeKey, err)
	}
	return helper.JsonDeleted(c, id.String())
}
