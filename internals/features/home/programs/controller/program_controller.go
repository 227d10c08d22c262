package controller

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/home/programs/dto"
	helper "schoolsite_backend/internals/helpers"
)

type programService interface {
	ListPublished(ctx context.Context, limit int) ([]dto.ProgramResponse, error)
	ListAll(ctx context.Context, limit int) ([]dto.ProgramResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProgramResponse, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*dto.ProgramResponse, error)
	Create(ctx context.Context, req dto.CreateProgramRequest) (*dto.ProgramResponse, error)
	Update(ctx context.Context, id uuid.UUID, patch dto.PatchProgramRequest) (*dto.ProgramResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProgramController dipakai dua kali: /programs dan /additional-programs.
type ProgramController struct {
	svc    programService
	key    string // key envelope JSON
	entity string // nama di pesan error
	log    *zap.Logger
}

func NewProgramController(svc programService, key, entity string, log *zap.Logger) *ProgramController {
	return &ProgramController{svc: svc, key: key, entity: entity, log: log}
}

// GET ?id= | ?all=true | ?limit=
func (ctl *ProgramController) Get(c *fiber.Ctx) error {
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
			return helper.WriteServiceError(c, ctl.log, ctl.entity, err)
		}
		return helper.JsonOK(c, ctl.key, item)
	}

	limit, err := helper.QueryLimit(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var items []dto.ProgramResponse
	if helper.QueryFlag(c, "all") {
		items, err = ctl.svc.ListAll(ctx, limit)
	} else {
		items, err = ctl.svc.ListPublished(ctx, limit)
	}
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, ctl.entity, err)
	}
	return helper.JsonOK(c, ctl.key, items)
}

func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	item, err := ctl.svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, ctl.entity, err)
	}
	return helper.JsonCreated(c, ctl.key, item)
}

func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	var req dto.PatchProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	id, err := helper.ParseID(req.ID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	item, err := ctl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, ctl.entity, err)
	}
	return helper.JsonOK(c, ctl.key, item)
}

func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.WriteServiceError(c, ctl.log, ctl.entity, err)
	}
	return helper.JsonDeleted(c, id.String())
}
