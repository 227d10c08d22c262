package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"schoolsite_backend/internals/features/home/school_info/model"
	helper "schoolsite_backend/internals/helpers"
)

type FeatureDTO struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=50"`
}

type SchoolInfoResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Tagline          string         `json:"tagline"`
	MissionStatement string         `json:"missionStatement"`
	LocalizedText    *string        `json:"localizedText,omitempty"`
	ContactInfo      map[string]any `json:"contactInfo"`
	Features         []FeatureDTO   `json:"features"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func FromModel(m *model.SchoolInfoModel) SchoolInfoResponse {
	contact := map[string]any(m.SchoolInfoContactInfo)
	if contact == nil {
		contact = map[string]any{}
	}
	features := make([]FeatureDTO, 0, len(m.SchoolInfoFeatures))
	for _, f := range m.SchoolInfoFeatures {
		features = append(features, FeatureDTO(f))
	}
	return SchoolInfoResponse{
		ID:               m.SchoolInfoID.String(),
		Name:             m.SchoolInfoName,
		Tagline:          m.SchoolInfoTagline,
		MissionStatement: m.SchoolInfoMissionStatement,
		LocalizedText:    m.SchoolInfoLocalizedText,
		ContactInfo:      contact,
		Features:         features,
		CreatedAt:        m.SchoolInfoCreatedAt,
		UpdatedAt:        m.SchoolInfoUpdatedAt,
	}
}

func toFeatures(in []FeatureDTO) datatypes.JSONSlice[model.Feature] {
	out := make(datatypes.JSONSlice[model.Feature], 0, len(in))
	for _, f := range in {
		out = append(out, model.Feature{
			Title:       strings.TrimSpace(f.Title),
			Description: strings.TrimSpace(f.Description),
			Icon:        strings.TrimSpace(f.Icon),
		})
	}
	return out
}

/* ===================== Upsert (POST) ===================== */

type UpsertSchoolInfoRequest struct {
	Name             string         `json:"name" validate:"required,max=255"`
	Tagline          string         `json:"tagline" validate:"max=255"`
	MissionStatement string         `json:"missionStatement"`
	LocalizedText    *string        `json:"localizedText"`
	ContactInfo      map[string]any `json:"contactInfo"`
	Features         []FeatureDTO   `json:"features" validate:"dive"`
}

func (r *UpsertSchoolInfoRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Tagline = strings.TrimSpace(r.Tagline)
	r.MissionStatement = strings.TrimSpace(r.MissionStatement)
	r.LocalizedText = helper.TrimPtr(r.LocalizedText)
}

func (r *UpsertSchoolInfoRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpsertSchoolInfoRequest) ToModel() *model.SchoolInfoModel {
	contact := datatypes.JSONMap(r.ContactInfo)
	if contact == nil {
		contact = datatypes.JSONMap{}
	}
	return &model.SchoolInfoModel{
		SchoolInfoKey:              model.SingletonKey,
		SchoolInfoName:             r.Name,
		SchoolInfoTagline:          r.Tagline,
		SchoolInfoMissionStatement: r.MissionStatement,
		SchoolInfoLocalizedText:    r.LocalizedText,
		SchoolInfoContactInfo:      contact,
		SchoolInfoFeatures:         toFeatures(r.Features),
	}
}

// UpsertColumns: kolom yang ditimpa saat baris singleton sudah ada (id & created_at tetap).
var UpsertColumns = []string{
	"school_info_name",
	"school_info_tagline",
	"school_info_mission_statement",
	"school_info_localized_text",
	"school_info_contact_info",
	"school_info_features",
	"school_info_updated_at",
}

/* ===================== Patch (PUT) ===================== */

type PatchSchoolInfoRequest struct {
	ID               string                            `json:"id"`
	Name             helper.PatchField[string]         `json:"name"`
	Tagline          helper.PatchField[string]         `json:"tagline"`
	MissionStatement helper.PatchField[string]         `json:"missionStatement"`
	LocalizedText    helper.PatchField[string]         `json:"localizedText"`
	ContactInfo      helper.PatchField[map[string]any] `json:"contactInfo"`
	Features         helper.PatchField[[]FeatureDTO]   `json:"features"`
}

func (p *PatchSchoolInfoRequest) Validate(v *validator.Validate) error {
	if val, ok := p.Name.Get(); ok && (val == nil || strings.TrimSpace(*val) == "") {
		return helper.FieldError("name", "required")
	}
	if val, ok := p.Features.Get(); ok && val != nil {
		for _, f := range *val {
			if err := v.Struct(f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *PatchSchoolInfoRequest) Columns() helper.PatchColumns {
	trim := func(s string) any { return strings.TrimSpace(s) }

	cols := helper.PatchColumns{}
	helper.PutMapped(cols, "school_info_name", p.Name, trim)
	helper.PutMapped(cols, "school_info_tagline", p.Tagline, trim)
	helper.PutMapped(cols, "school_info_mission_statement", p.MissionStatement, trim)
	helper.Put(cols, "school_info_localized_text", p.LocalizedText)
	// contactInfo null → object kosong
	if v, ok := p.ContactInfo.Get(); ok {
		if v == nil {
			cols["school_info_contact_info"] = datatypes.JSONMap{}
		} else {
			cols["school_info_contact_info"] = datatypes.JSONMap(*v)
		}
	}
	helper.PutMapped(cols, "school_info_features", p.Features, func(f []FeatureDTO) any { return toFeatures(f) })
	return cols
}
