package controller

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/home/achievements/dto"
	"schoolsite_backend/internals/features/home/achievements/service"
	helper "schoolsite_backend/internals/helpers"
)

const (
	achievementsKey = "achievements"
	entity          = "achievement"
)

type achievementService interface {
	ListPublished(ctx context.Context, q service.AchievementQuery) ([]dto.AchievementResponse, error)
	ListAll(ctx context.Context, q service.AchievementQuery) ([]dto.AchievementResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AchievementResponse, error)
	Create(ctx context.Context, req dto.CreateAchievementRequest) (*dto.AchievementResponse, error)
	ReplaceAll(ctx context.Context, items []dto.CreateAchievementRequest) ([]dto.AchievementResponse, error)
	Update(ctx context.Context, id uuid.UUID, patch dto.PatchAchievementRequest) (*dto.AchievementResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AchievementController struct {
	svc achievementService
	log *zap.Logger
}

func NewAchievementController(svc achievementService, log *zap.Logger) *AchievementController {
	return &AchievementController{svc: svc, log: log}
}

// GET ?id= | ?featured=&limit=  (selalu urut displayOrder ASC)
func (ctl *AchievementController) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if raw := c.Query("id"); raw != "" {
		id, err := helper.ParseID(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
		item, err := ctl.svc.GetByID(ctx, id)
		if err != nil {
			return helper.WriteServiceError(c, ctl.log, entity, err)
		}
		return helper.JsonOK(c, achievementsKey, item)
	}

	var q service.AchievementQuery
	featured, err := helper.QueryBool(c, "featured")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Featured = featured
	if q.Limit, err = helper.QueryLimit(c); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var items []dto.AchievementResponse
	if helper.QueryFlag(c, "all") {
		items, err = ctl.svc.ListAll(ctx, q)
	} else {
		items, err = ctl.svc.ListPublished(ctx, q)
	}
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonOK(c, achievementsKey, items)
}

/*
=========================================================

	POST /api/achievements
	{"action":"create", ...field}            → 201 satu item
	{"action":"replace","achievements":[..]} → 200 seluruh daftar baru
	Body lama tanpa "action" + array "achievements" → replace
	=========================================================
*/
func (ctl *AchievementController) Post(c *fiber.Ctx) error {
	var cmd dto.AchievementsCommand
	if err := c.BodyParser(&cmd); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}

	switch cmd.ResolveAction() {
	case dto.ActionReplace:
		if cmd.Achievements == nil {
			return helper.JsonError(c, http.StatusBadRequest, "achievements is required for replace")
		}
		items, err := ctl.svc.ReplaceAll(c.UserContext(), *cmd.Achievements)
		if err != nil {
			return helper.WriteServiceError(c, ctl.log, entity, err)
		}
		return helper.JsonOK(c, achievementsKey, items)

	case dto.ActionCreate:
		var req dto.CreateAchievementRequest
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
		}
		item, err := ctl.svc.Create(c.UserContext(), req)
		if err != nil {
			return helper.WriteServiceError(c, ctl.log, entity, err)
		}
		return helper.JsonCreated(c, achievementsKey, item)

	default:
		return helper.JsonError(c, http.StatusBadRequest, `action must be "create" or "replace"`)
	}
}

func (ctl *AchievementController) Update(c *fiber.Ctx) error {
	var req dto.PatchAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	id, err := helper.ParseID(req.ID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	item, err := ctl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonOK(c, achievementsKey, item)
}

func (ctl *AchievementController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonDeleted(c, id.String())
}
