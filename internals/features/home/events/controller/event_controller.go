package controller

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/home/events/dto"
	helper "schoolsite_backend/internals/helpers"
)

type eventService interface {
	ListPublished(ctx context.Context, limit int) ([]dto.EventResponse, error)
	ListAll(ctx context.Context, limit int) ([]dto.EventResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error)
	Update(ctx context.Context, id uuid.UUID, patch dto.PatchEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	eventsKey = "events"
	entity    = "event"
)

type EventController struct {
	svc eventService
	log *zap.Logger
}

func NewEventController(svc eventService, log *zap.Logger) *EventController {
	return &EventController{svc: svc, log: log}
}

// GET ?id= | ?all=true | ?limit=
func (ctl *EventController) Get(c *fiber.Ctx) error {
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
		return helper.JsonOK(c, eventsKey, item)
	}

	limit, err := helper.QueryLimit(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// urut event_date ASC (agenda terdekat dulu)
	var items []dto.EventResponse
	if helper.QueryFlag(c, "all") {
		items, err = ctl.svc.ListAll(ctx, limit)
	} else {
		items, err = ctl.svc.ListPublished(ctx, limit)
	}
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonOK(c, eventsKey, items)
}

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid request body")
	}
	item, err := ctl.svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonCreated(c, eventsKey, item)
}

func (ctl *EventController) Update(c *fiber.Ctx) error {
	var req dto.PatchEventRequest
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
	return helper.JsonOK(c, eventsKey, item)
}

func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.WriteServiceError(c, ctl.log, entity, err)
	}
	return helper.JsonDeleted(c, id.String())
}
