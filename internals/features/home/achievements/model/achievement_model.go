package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementModel struct {
	AchievementID              uuid.UUID `gorm:"column:achievement_id;primaryKey;type:uuid"`
	AchievementTitle           string    `gorm:"column:achievement_title;type:varchar(255);not null"`
	AchievementDescription     string    `gorm:"column:achievement_description;type:text"`
	AchievementDate            string    `gorm:"column:achievement_date;type:varchar(50)"`
	AchievementType            string    `gorm:"column:achievement_type;type:varchar(50)"`
	AchievementIcon            string    `gorm:"column:achievement_icon;type:varchar(50)"`
	AchievementFeatured        bool      `gorm:"column:achievement_featured;not null;default:false"`
	AchievementDisplayOrder    int       `gorm:"column:achievement_display_order;not null;default:0;index"`
	AchievementBackgroundImage *string   `gorm:"column:achievement_background_image;type:text"`
	AchievementCreatedAt       time.Time `gorm:"column:achievement_created_at;autoCreateTime"`
	AchievementUpdatedAt       time.Time `gorm:"column:achievement_updated_at;autoUpdateTime"`
}

func (AchievementModel) TableName() string {
	return "achievements"
}

func (m *AchievementModel) BeforeCreate(tx *gorm.DB) error {
	if m.AchievementID == uuid.Nil {
		m.AchievementID = uuid.New()
	}
	return nil
}
