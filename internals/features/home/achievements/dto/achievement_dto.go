package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"schoolsite_backend/internals/features/home/achievements/model"
	helper "schoolsite_backend/internals/helpers"
)

type AchievementResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Type            string    `json:"type"`
	Icon            string    `json:"icon"`
	Featured        bool      `json:"featured"`
	DisplayOrder    int       `json:"displayOrder"`
	BackgroundImage *string   `json:"backgroundImage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromModel(m *model.AchievementModel) AchievementResponse {
	return AchievementResponse{
		ID:              m.AchievementID.String(),
		Title:           m.AchievementTitle,
		Description:     m.AchievementDescription,
		Date:            m.AchievementDate,
		Type:            m.AchievementType,
		Icon:            m.AchievementIcon,
		Featured:        m.AchievementFeatured,
		DisplayOrder:    m.AchievementDisplayOrder,
		BackgroundImage: m.AchievementBackgroundImage,
		CreatedAt:       m.AchievementCreatedAt,
		UpdatedAt:       m.AchievementUpdatedAt,
	}
}

func FromModels(rows []model.AchievementModel) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

/* ===================== POST body ===================== */

const (
	ActionCreate  = "create"
	ActionReplace = "replace"
)

// AchievementsCommand: discriminator POST. Body lama tanpa "action" tapi berisi
// array "achievements" diperlakukan sebagai replace.
type AchievementsCommand struct {
	Action       string                      `json:"action"`
	Achievements *[]CreateAchievementRequest `json:"achievements"`
}

func (c AchievementsCommand) ResolveAction() string {
	action := strings.ToLower(strings.TrimSpace(c.Action))
	if action == "" {
		if c.Achievements != nil {
			return ActionReplace
		}
		return ActionCreate
	}
	return action
}

/* ===================== Create ===================== */

type CreateAchievementRequest struct {
	Title           string  `json:"title" validate:"required,max=255"`
	Description     string  `json:"description"`
	Date            string  `json:"date" validate:"max=50"`
	Type            string  `json:"type" validate:"max=50"`
	Icon            string  `json:"icon" validate:"max=50"`
	Featured        bool    `json:"featured"`
	DisplayOrder    *int    `json:"displayOrder" validate:"omitempty,min=0"`
	BackgroundImage *string `json:"backgroundImage"`
}

func (r *CreateAchievementRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Date = strings.TrimSpace(r.Date)
	r.Type = strings.TrimSpace(r.Type)
	r.Icon = strings.TrimSpace(r.Icon)
	r.BackgroundImage = helper.TrimPtr(r.BackgroundImage)
}

func (r *CreateAchievementRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ToModel: order dipakai kalau displayOrder tidak dikirim.
func (r *CreateAchievementRequest) ToModel(order int) model.AchievementModel {
	if r.DisplayOrder != nil {
		order = *r.DisplayOrder
	}
	return model.AchievementModel{
		AchievementTitle:           r.Title,
		AchievementDescription:     r.Description,
		AchievementDate:            r.Date,
		AchievementType:            r.Type,
		AchievementIcon:            r.Icon,
		AchievementFeatured:        r.Featured,
		AchievementDisplayOrder:    order,
		AchievementBackgroundImage: r.BackgroundImage,
	}
}

/* ===================== Patch ===================== */

type PatchAchievementRequest struct {
	ID              string                    `json:"id"`
	Title           helper.PatchField[string] `json:"title"`
	Description     helper.PatchField[string] `json:"description"`
	Date            helper.PatchField[string] `json:"date"`
	Type            helper.PatchField[string] `json:"type"`
	Icon            helper.PatchField[string] `json:"icon"`
	Featured        helper.PatchField[bool]   `json:"featured"`
	DisplayOrder    helper.PatchField[int]    `json:"displayOrder"`
	BackgroundImage helper.PatchField[string] `json:"backgroundImage"`
}

func (p *PatchAchievementRequest) Validate() error {
	if v, ok := p.Title.Get(); ok && (v == nil || strings.TrimSpace(*v) == "") {
		return helper.FieldError("title", "required")
	}
	if v, ok := p.DisplayOrder.Get(); ok && v != nil && *v < 0 {
		return helper.FieldError("displayOrder", "min")
	}
	return nil
}

func (p *PatchAchievementRequest) Columns() helper.PatchColumns {
	trim := func(s string) any { return strings.TrimSpace(s) }

	cols := helper.PatchColumns{}
	helper.PutMapped(cols, "achievement_title", p.Title, trim)
	helper.PutMapped(cols, "achievement_description", p.Description, trim)
	helper.PutMapped(cols, "achievement_date", p.Date, trim)
	helper.PutMapped(cols, "achievement_type", p.Type, trim)
	helper.PutMapped(cols, "achievement_icon", p.Icon, trim)
	helper.PutRequired(cols, "achievement_featured", p.Featured)
	helper.PutRequired(cols, "achievement_display_order", p.DisplayOrder)
	helper.Put(cols, "achievement_background_image", p.BackgroundImage)
	return cols
}
