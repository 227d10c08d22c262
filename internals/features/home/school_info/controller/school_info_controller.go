package controller

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/home/school_info/dto"
	helper "schoolsite_backend/internals/helpers"
)

const (
	schoolInfoKey = "schoolInfo"
	entity        = "school info"
)

type schoolInfoService interface {
	Get(ctx context.Context) (*dto.SchoolInfoResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SchoolInfoResponse, error)
	Upsert(ctx context.Context, req dto.UpsertSchoolInfoRequest) (*dto.SchoolInfoResponse, error)
	Update(ctx context.Context, id uuid.UUID, patch dto.PatchSchoolInfoRequest) (*dto.SchoolInfoResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SchoolInfoController struct {
	svc schoolInfoService
	log *zap.Logger
}

func NewSchoolInfoController(svc schoolInfoService, log *zap.Logger) *SchoolInfoController {
	return &SchoolInfoController{svc: svc, log: log}
}

// GET /api/school-info (?id= opsional)
func (ctl *SchoolInfoController) Get(c *fiber.Ctx) error {
	var (
		item *dto.SchoolInfoResponse
		err  error
	)
	if raw := c.Query("id"); raw != "" {
		id, perr := helper.ParseID(raw)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, perr.Error())
		}
		item, err = ctl.svc.GetByID(c.UserContext(), id)
	} else {
		item, err = ctl.svc.Get(c.UserContext())
	}
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonOK(c, schoolInfoKey, item)
}

// POST = upsert singleton
func (ctl *SchoolInfoController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertSchoolInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	item, err := ctl.svc.Upsert(c.UserContext(), req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonOK(c, schoolInfoKey, item)
}

func (ctl *SchoolInfoController) Update(c *fiber.Ctx) error {
	var req dto.PatchSchoolInfoRequest
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
	return helper.JsonOK(c, schoolInfoKey, item)
}

func (ctl *SchoolInfoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonDeleted(c, id.String())
}
