package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"schoolsite_backend/internals/features/home/events/model"
	helper "schoolsite_backend/internals/helpers"
)

type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   string    `json:"eventDate"`
	EventTime   *string   `json:"eventTime,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Recurring   bool      `json:"recurring"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromModel(m *model.EventModel) EventResponse {
	return EventResponse{
		ID:          m.EventID.String(),
		Title:       m.EventTitle,
		Description: m.EventDescription,
		EventDate:   model.FormatDate(m.EventDate),
		EventTime:   m.EventTime,
		Location:    m.EventLocation,
		Recurring:   m.EventIsRecurring,
		Published:   m.EventPublished,
		CreatedAt:   m.EventCreatedAt,
		UpdatedAt:   m.EventUpdatedAt,
	}
}

func FromModels(rows []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

/* ===================== Create ===================== */

type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	EventDate   string  `json:"eventDate" validate:"required,datetime=2006-01-02"`
	EventTime   *string `json:"eventTime" validate:"omitempty,max=50"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	Recurring   bool    `json:"recurring"`
	Published   bool    `json:"published"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.EventDate = strings.TrimSpace(r.EventDate)
	r.EventTime = helper.TrimPtr(r.EventTime)
	r.Location = helper.TrimPtr(r.Location)
}

func (r *CreateEventRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ToModel dipanggil setelah Validate, jadi tanggal sudah pasti valid.
func (r *CreateEventRequest) ToModel() *model.EventModel {
	date, _ := model.ParseDate(r.EventDate)
	return &model.EventModel{
		EventTitle:       r.Title,
		EventDescription: r.Description,
		EventDate:        date,
		EventTime:        r.EventTime,
		EventLocation:    r.Location,
		EventIsRecurring: r.Recurring,
		EventPublished:   r.Published,
	}
}

/* ===================== Patch ===================== */

type PatchEventRequest struct {
	ID          string                    `json:"id"`
	Title       helper.PatchField[string] `json:"title"`
	Description helper.PatchField[string] `json:"description"`
	EventDate   helper.PatchField[string] `json:"eventDate"`
	EventTime   helper.PatchField[string] `json:"eventTime"`
	Location    helper.PatchField[string] `json:"location"`
	Recurring   helper.PatchField[bool]   `json:"recurring"`
	Published   helper.PatchField[bool]   `json:"published"`
}

func (p *PatchEventRequest) Validate() error {
	if v, ok := p.Title.Get(); ok && (v == nil || strings.TrimSpace(*v) == "") {
		return helper.FieldError("title", "required")
	}
	if v, ok := p.EventDate.Get(); ok {
		if v == nil {
			return helper.FieldError("eventDate", "required")
		}
		if _, err := model.ParseDate(strings.TrimSpace(*v)); err != nil {
			return helper.FieldError("eventDate", "datetime")
		}
	}
	return nil
}

func (p *PatchEventRequest) Columns() helper.PatchColumns {
	trim := func(s string) any { return strings.TrimSpace(s) }

	cols := helper.PatchColumns{}
	helper.PutMapped(cols, "event_title", p.Title, trim)
	helper.PutMapped(cols, "event_description", p.Description, trim)
	helper.PutMapped(cols, "event_date", p.EventDate, func(s string) any {
		d, _ := model.ParseDate(strings.TrimSpace(s))
		return d
	})
	helper.Put(cols, "event_time", p.EventTime)
	helper.Put(cols, "event_location", p.Location)
	helper.PutRequired(cols, "event_is_recurring", p.Recurring)
	helper.PutRequired(cols, "event_published", p.Published)
	return cols
}
