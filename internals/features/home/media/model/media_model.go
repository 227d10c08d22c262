package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ResourceImage    = "image"
	ResourceVideo    = "video"
	ResourceDocument = "document"
)

type MediaModel struct {
	MediaID           uuid.UUID `gorm:"column:media_id;primaryKey;type:uuid"`
	MediaURL          string    `gorm:"column:media_url;type:text;not null"`
	MediaAlt          string    `gorm:"column:media_alt;type:varchar(255)"`
	MediaAssetID      *string   `gorm:"column:media_asset_id;type:text;index"`
	MediaFolder       string    `gorm:"column:media_folder;type:varchar(255);index"`
	MediaResourceType string    `gorm:"column:media_resource_type;type:varchar(20);not null"`
	MediaCreatedAt    time.Time `gorm:"column:media_created_at;autoCreateTime"`
	MediaUpdatedAt    time.Time `gorm:"column:media_updated_at;autoUpdateTime"`
}

func (MediaModel) TableName() string {
	return "media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.MediaID == uuid.Nil {
		m.MediaID = uuid.New()
	}
	if m.MediaResourceType == "" {
		m.MediaResourceType = ResourceImage
	}
	return nil
}
