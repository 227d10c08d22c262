package controller

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/home/faculty/dto"
	"schoolsite_backend/internals/features/home/faculty/service"
	helper "schoolsite_backend/internals/helpers"
)

const (
	facultyKey = "faculty"
	entity     = "faculty member"
)

type facultyService interface {
	ListPublished(ctx context.Context, q service.FacultyQuery) ([]dto.FacultyResponse, error)
	ListAll(ctx context.Context, q service.FacultyQuery) ([]dto.FacultyResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.FacultyResponse, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*dto.FacultyResponse, error)
	Create(ctx context.Context, req dto.CreateFacultyRequest) (*dto.FacultyResponse, error)
	Update(ctx context.Context, id uuid.UUID, patch dto.PatchFacultyRequest) (*dto.FacultyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FacultyController struct {
	svc facultyService
	log *zap.Logger
}

func NewFacultyController(svc facultyService, log *zap.Logger) *FacultyController {
	return &FacultyController{svc: svc, log: log}
}

// GET ?id= | ?all=true&department=&featured=&limit=
func (ctl *FacultyController) Get(c *fiber.Ctx) error {
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
			return helper.WriteServiceError(c, ctl.log, entity, err)
		}
		return helper.JsonOK(c, facultyKey, item)
	}

	q := service.FacultyQuery{Department: helper.QueryString(c, "department")}
	featured, err := helper.QueryBool(c, "featured")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Featured = featured
	if q.Limit, err = helper.QueryLimit(c); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var items []dto.FacultyResponse
	if helper.QueryFlag(c, "all") {
		items, err = ctl.svc.ListAll(ctx, q)
	} else {
		items, err = ctl.svc.ListPublished(ctx, q)
	}
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonOK(c, facultyKey, items)
}

func (ctl *FacultyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	item, err := ctl.svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonCreated(c, facultyKey, item)
}

func (ctl *FacultyController) Update(c *fiber.Ctx) error {
	var req dto.PatchFacultyRequest
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
	return helper.JsonOK(c, facultyKey, item)
}

func (ctl *FacultyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonDeleted(c, id.String())
}
