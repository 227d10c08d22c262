package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"schoolsite_backend/internals/features/home/media/model"
	helper "schoolsite_backend/internals/helpers"
)

type MediaResponse struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	Alt          string    `json:"alt"`
	AssetID      *string   `json:"assetId,omitempty"`
	Folder       string    `json:"folder"`
	ResourceType string    `json:"resourceType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromModel(m *model.MediaModel) MediaResponse {
	return MediaResponse{
		ID:           m.MediaID.String(),
		URL:          m.MediaURL,
		Alt:          m.MediaAlt,
		AssetID:      m.MediaAssetID,
		Folder:       m.MediaFolder,
		ResourceType: m.MediaResourceType,
		CreatedAt:    m.MediaCreatedAt,
		UpdatedAt:    m.MediaUpdatedAt,
	}
}

func FromModels(rows []model.MediaModel) []MediaResponse {
	out := make([]MediaResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

/* ===================== Create ===================== */

type CreateMediaRequest struct {
	URL          string  `json:"url" validate:"required,url"`
	Alt          string  `json:"alt" validate:"max=255"`
	AssetID      *string `json:"assetId"`
	Folder       string  `json:"folder" validate:"max=255"`
	ResourceType string  `json:"resourceType" validate:"omitempty,oneof=image video document"`
}

func (r *CreateMediaRequest) Normalize() {
	r.URL = strings.TrimSpace(r.URL)
	r.Alt = strings.TrimSpace(r.Alt)
	r.AssetID = helper.TrimPtr(r.AssetID)
	r.Folder = strings.Trim(strings.TrimSpace(r.Folder), "/")
	r.ResourceType = strings.ToLower(strings.TrimSpace(r.ResourceType))
}

func (r *CreateMediaRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateMediaRequest) ToModel() *model.MediaModel {
	return &model.MediaModel{
		MediaURL:          r.URL,
		MediaAlt:          r.Alt,
		MediaAssetID:      r.AssetID,
		MediaFolder:       r.Folder,
		MediaResourceType: r.ResourceType,
	}
}

/* ===================== Patch ===================== */

type PatchMediaRequest struct {
	ID           string                    `json:"id"`
	URL          helper.PatchField[string] `json:"url"`
	Alt          helper.PatchField[string] `json:"alt"`
	AssetID      helper.PatchField[string] `json:"assetId"`
	Folder       helper.PatchField[string] `json:"folder"`
	ResourceType helper.PatchField[string] `json:"resourceType"`
}

func (p *PatchMediaRequest) Validate(v *validator.Validate) error {
	if val, ok := p.URL.Get(); ok {
		if val == nil || v.Var(strings.TrimSpace(*val), "required,url") != nil {
			return helper.FieldError("url", "url")
		}
	}
	if val, ok := p.ResourceType.Get(); ok && val != nil {
		if v.Var(strings.ToLower(strings.TrimSpace(*val)), "oneof=image video document") != nil {
			return helper.FieldError("resourceType", "oneof")
		}
	}
	return nil
}

func (p *PatchMediaRequest) Columns() helper.PatchColumns {
	trim := func(s string) any { return strings.TrimSpace(s) }

	cols := helper.PatchColumns{}
	helper.PutMapped(cols, "media_url", p.URL, trim)
	helper.PutMapped(cols, "media_alt", p.Alt, trim)
	helper.Put(cols, "media_asset_id", p.AssetID)
	helper.PutMapped(cols, "media_folder", p.Folder, func(s string) any { return strings.Trim(strings.TrimSpace(s), "/") })
	helper.PutMapped(cols, "media_resource_type", p.ResourceType, func(s string) any { return strings.ToLower(strings.TrimSpace(s)) })
	return cols
}
