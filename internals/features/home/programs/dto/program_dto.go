package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"schoolsite_backend/internals/features/home/programs/model"
	helper "schoolsite_backend/internals/helpers"
)

type ProgramResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Audience    string    `json:"audience"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Tuition     *string   `json:"tuition,omitempty"`
	Curriculum  string    `json:"curriculum"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromModel(m *model.ProgramModel) ProgramResponse {
	return ProgramResponse{
		ID:          m.ProgramID.String(),
		Type:        string(m.ProgramType),
		Title:       m.ProgramTitle,
		Audience:    m.ProgramAudience,
		Description: m.ProgramDescription,
		Features:    helper.ToStrings(m.ProgramFeatures),
		Color:       m.ProgramColor,
		Icon:        m.ProgramIcon,
		Tuition:     m.ProgramTuition,
		Curriculum:  m.ProgramCurriculum,
		Published:   m.ProgramPublished,
		CreatedAt:   m.ProgramCreatedAt,
		UpdatedAt:   m.ProgramUpdatedAt,
	}
}

func FromModels(rows []model.ProgramModel) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

/* ===================== Create ===================== */

type CreateProgramRequest struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Audience    string            `json:"audience" validate:"max=255"`
	Description string            `json:"description"`
	Features    []string          `json:"features"`
	Color       string            `json:"color" validate:"max=50"`
	Icon        string            `json:"icon" validate:"max=50"`
	Tuition     helper.FlexString `json:"tuition" validate:"max=100"`
	Curriculum  string            `json:"curriculum"`
	Published   bool              `json:"published"`
}

func (r *CreateProgramRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Audience = strings.TrimSpace(r.Audience)
	r.Description = strings.TrimSpace(r.Description)
	r.Color = strings.TrimSpace(r.Color)
	r.Icon = strings.TrimSpace(r.Icon)
	r.Curriculum = strings.TrimSpace(r.Curriculum)
}

func (r *CreateProgramRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateProgramRequest) ToModel(kind model.ProgramType) *model.ProgramModel {
	return &model.ProgramModel{
		ProgramType:        kind,
		ProgramTitle:       r.Title,
		ProgramAudience:    r.Audience,
		ProgramDescription: r.Description,
		ProgramFeatures:    helper.StringList(r.Features),
		ProgramColor:       r.Color,
		ProgramIcon:        r.Icon,
		ProgramTuition:     r.Tuition.Ptr(),
		ProgramCurriculum:  r.Curriculum,
		ProgramPublished:   r.Published,
	}
}

/* ===================== Patch ===================== */

type PatchProgramRequest struct {
	ID          string                               `json:"id"`
	Title       helper.PatchField[string]            `json:"title"`
	Audience    helper.PatchField[string]            `json:"audience"`
	Description helper.PatchField[string]            `json:"description"`
	Features    helper.PatchField[[]string]          `json:"features"`
	Color       helper.PatchField[string]            `json:"color"`
	Icon        helper.PatchField[string]            `json:"icon"`
	Tuition     helper.PatchField[helper.FlexString] `json:"tuition"`
	Curriculum  helper.PatchField[string]            `json:"curriculum"`
	Published   helper.PatchField[bool]              `json:"published"`
}

func (p *PatchProgramRequest) Validate() error {
	if v, ok := p.Title.Get(); ok && (v == nil || strings.TrimSpace(*v) == "") {
		return helper.FieldError("title", "required")
	}
	return nil
}

func (p *PatchProgramRequest) Columns() helper.PatchColumns {
	trim := func(s string) any { return strings.TrimSpace(s) }

	cols := helper.PatchColumns{}
	helper.PutMapped(cols, "program_title", p.Title, trim)
	helper.PutMapped(cols, "program_audience", p.Audience, trim)
	helper.PutMapped(cols, "program_description", p.Description, trim)
	helper.PutMapped(cols, "program_features", p.Features, func(f []string) any { return helper.StringList(f) })
	helper.PutMapped(cols, "program_color", p.Color, trim)
	helper.PutMapped(cols, "program_icon", p.Icon, trim)
	helper.PutMapped(cols, "program_curriculum", p.Curriculum, trim)
	helper.PutRequired(cols, "program_published", p.Published)

	// tuition nullable: null / "" → NULL
	if v, ok := p.Tuition.Get(); ok {
		if v == nil || v.Ptr() == nil {
			cols["program_tuition"] = nil
		} else {
			cols["program_tuition"] = *v.Ptr()
		}
	}
	return cols
}
