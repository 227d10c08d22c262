package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProgramType string

const (
	ProgramCore       ProgramType = "core"
	ProgramAdditional ProgramType = "additional"
)

type ProgramModel struct {
	ProgramID          uuid.UUID                   `gorm:"column:program_id;primaryKey;type:uuid"`
	ProgramType        ProgramType                 `gorm:"column:program_type;type:varchar(20);not null;index"`
	ProgramTitle       string                      `gorm:"column:program_title;type:varchar(255);not null"`
	ProgramAudience    string                      `gorm:"column:program_audience;type:varchar(255)"`
	ProgramDescription string                      `gorm:"column:program_description;type:text"`
	ProgramFeatures    datatypes.JSONSlice[string] `gorm:"column:program_features"`
	ProgramColor       string                      `gorm:"column:program_color;type:varchar(50)"`
	ProgramIcon        string                      `gorm:"column:program_icon;type:varchar(50)"`
	ProgramTuition     *string                     `gorm:"column:program_tuition;type:varchar(100)"`
	ProgramCurriculum  string                      `gorm:"column:program_curriculum;type:text"`
	ProgramPublished   bool                        `gorm:"column:program_published;not null;default:false;index"`
	ProgramCreatedAt   time.Time                   `gorm:"column:program_created_at;autoCreateTime"`
	ProgramUpdatedAt   time.Time                   `gorm:"column:program_updated_at;autoUpdateTime"`
}

func (ProgramModel) TableName() string {
	return "programs"
}

func (m *ProgramModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProgramID == uuid.Nil {
		m.ProgramID = uuid.New()
	}
	if m.ProgramType == "" {
		m.ProgramType = ProgramCore
	}
	return nil
}
