package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SingletonKey: satu-satunya nilai school_info_key yang dipakai; upsert konflik di kolom ini.
const SingletonKey = "main"

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type SchoolInfoModel struct {
	SchoolInfoID               uuid.UUID                    `gorm:"column:school_info_id;primaryKey;type:uuid"`
	SchoolInfoKey              string                       `gorm:"column:school_info_key;type:varchar(20);not null;uniqueIndex"`
	SchoolInfoName             string                       `gorm:"column:school_info_name;type:varchar(255);not null"`
	SchoolInfoTagline          string                       `gorm:"column:school_info_tagline;type:varchar(255)"`
	SchoolInfoMissionStatement string                       `gorm:"column:school_info_mission_statement;type:text"`
	SchoolInfoLocalizedText    *string                      `gorm:"column:school_info_localized_text;type:text"`
	SchoolInfoContactInfo      datatypes.JSONMap            `gorm:"column:school_info_contact_info"`
	SchoolInfoFeatures         datatypes.JSONSlice[Feature] `gorm:"column:school_info_features"`
	SchoolInfoCreatedAt        time.Time                    `gorm:"column:school_info_created_at;autoCreateTime"`
	SchoolInfoUpdatedAt        time.Time                    `gorm:"column:school_info_updated_at;autoUpdateTime"`
}

func (SchoolInfoModel) TableName() string {
	return "school_info"
}

func (m *SchoolInfoModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolInfoID == uuid.Nil {
		m.SchoolInfoID = uuid.New()
	}
	if m.SchoolInfoKey == "" {
		m.SchoolInfoKey = SingletonKey
	}
	return nil
}
