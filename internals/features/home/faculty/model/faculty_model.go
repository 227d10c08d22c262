package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FacultyModel struct {
	FacultyID             uuid.UUID                   `gorm:"column:faculty_id;primaryKey;type:uuid"`
	FacultyName           string                      `gorm:"column:faculty_name;type:varchar(150);not null"`
	FacultyNameLocal      *string                     `gorm:"column:faculty_name_local;type:varchar(150)"`
	FacultyPosition       string                      `gorm:"column:faculty_position;type:varchar(150);not null"`
	FacultyDepartment     Department                  `gorm:"column:faculty_department;type:varchar(40);not null;index"`
	FacultyEmail          *string                     `gorm:"column:faculty_email;type:varchar(255)"`
	FacultyQualifications datatypes.JSONSlice[string] `gorm:"column:faculty_qualifications"`
	FacultyExperience     *string                     `gorm:"column:faculty_experience;type:text"`
	FacultySpecialization *string                     `gorm:"column:faculty_specialization;type:text"`
	FacultyBio            *string                     `gorm:"column:faculty_bio;type:text"`
	FacultyGrade          *string                     `gorm:"column:faculty_grade;type:varchar(50);index"`
	FacultyLanguages      datatypes.JSONSlice[string] `gorm:"column:faculty_languages"`
	FacultySubjects       datatypes.JSONSlice[string] `gorm:"column:faculty_subjects"`
	FacultyAchievements   datatypes.JSONSlice[string] `gorm:"column:faculty_achievements"`
	FacultyFeatured       bool                        `gorm:"column:faculty_featured;not null;default:false"`
	FacultyPublished      bool                        `gorm:"column:faculty_published;not null;default:false;index"`
	FacultyPhoto          *string                     `gorm:"column:faculty_photo;type:text"`
	FacultyCreatedAt      time.Time                   `gorm:"column:faculty_created_at;autoCreateTime"`
	FacultyUpdatedAt      time.Time                   `gorm:"column:faculty_updated_at;autoUpdateTime"`
}

func (FacultyModel) TableName() string {
	return "faculty"
}

func (m *FacultyModel) BeforeCreate(tx *gorm.DB) error {
	if m.FacultyID == uuid.Nil {
		m.FacultyID = uuid.New()
	}
	return nil
}
