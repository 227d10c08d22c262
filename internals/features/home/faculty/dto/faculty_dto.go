package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"schoolsite_backend/internals/features/home/faculty/model"
	helper "schoolsite_backend/internals/helpers"
)

type FacultyResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NameLocal      *string   `json:"nameLocal,omitempty"`
	Position       string    `json:"position"`
	Department     string    `json:"department"`
	Email          *string   `json:"email,omitempty"`
	Qualifications []string  `json:"qualifications"`
	Experience     *string   `json:"experience,omitempty"`
	Specialization *string   `json:"specialization,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	Grade          *string   `json:"grade,omitempty"`
	Languages      []string  `json:"languages"`
	Subjects       []string  `json:"subjects"`
	Achievements   []string  `json:"achievements"`
	Featured       bool      `json:"featured"`
	Published      bool      `json:"published"`
	Photo          *string   `json:"photo,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromModel(m *model.FacultyModel) FacultyResponse {
	return FacultyResponse{
		ID:             m.FacultyID.String(),
		Name:           m.FacultyName,
		NameLocal:      m.FacultyNameLocal,
		Position:       m.FacultyPosition,
		Department:     string(m.FacultyDepartment),
		Email:          m.FacultyEmail,
		Qualifications: helper.ToStrings(m.FacultyQualifications),
		Experience:     m.FacultyExperience,
		Specialization: m.FacultySpecialization,
		Bio:            m.FacultyBio,
		Grade:          m.FacultyGrade,
		Languages:      helper.ToStrings(m.FacultyLanguages),
		Subjects:       helper.ToStrings(m.FacultySubjects),
		Achievements:   helper.ToStrings(m.FacultyAchievements),
		Featured:       m.FacultyFeatured,
		Published:      m.FacultyPublished,
		Photo:          m.FacultyPhoto,
		CreatedAt:      m.FacultyCreatedAt,
		UpdatedAt:      m.FacultyUpdatedAt,
	}
}

func FromModels(rows []model.FacultyModel) []FacultyResponse {
	out := make([]FacultyResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

/* ===================== Create ===================== */

type CreateFacultyRequest struct {
	Name           string   `json:"name" validate:"required,max=150"`
	NameLocal      *string  `json:"nameLocal" validate:"omitempty,max=150"`
	Position       string   `json:"position" validate:"required,max=150"`
	Department     string   `json:"department" validate:"required"`
	Email          *string  `json:"email" validate:"omitempty,email,max=255"`
	Qualifications []string `json:"qualifications"`
	Experience     *string  `json:"experience"`
	Specialization *string  `json:"specialization"`
	Bio            *string  `json:"bio"`
	Grade          *string  `json:"grade" validate:"omitempty,max=50"`
	Languages      []string `json:"languages"`
	Subjects       []string `json:"subjects"`
	Achievements   []string `json:"achievements"`
	Featured       bool     `json:"featured"`
	Published      bool     `json:"published"`
	Photo          *string  `json:"photo"`

	department model.Department
}

func (r *CreateFacultyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.NameLocal = helper.TrimPtr(r.NameLocal)
	r.Position = strings.TrimSpace(r.Position)
	r.Email = helper.TrimPtr(r.Email)
	r.Experience = helper.TrimPtr(r.Experience)
	r.Specialization = helper.TrimPtr(r.Specialization)
	r.Bio = helper.TrimPtr(r.Bio)
	r.Grade = helper.TrimPtr(r.Grade)
	r.Photo = helper.TrimPtr(r.Photo)
}

// Validate juga menormalkan department ke kode; nama yang tidak dikenal ditolak.
func (r *CreateFacultyRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	d, ok := model.NormalizeDepartment(r.Department)
	if !ok {
		return helper.FieldError("department", "oneof")
	}
	r.department = d
	return nil
}

func (r *CreateFacultyRequest) ToModel() *model.FacultyModel {
	return &model.FacultyModel{
		FacultyName:           r.Name,
		FacultyNameLocal:      r.NameLocal,
		FacultyPosition:       r.Position,
		FacultyDepartment:     r.department,
		FacultyEmail:          r.Email,
		FacultyQualifications: helper.StringList(r.Qualifications),
		FacultyExperience:     r.Experience,
		FacultySpecialization: r.Specialization,
		FacultyBio:            r.Bio,
		FacultyGrade:          r.Grade,
		FacultyLanguages:      helper.StringList(r.Languages),
		FacultySubjects:       helper.StringList(r.Subjects),
		FacultyAchievements:   helper.StringList(r.Achievements),
		FacultyFeatured:       r.Featured,
		FacultyPublished:      r.Published,
		FacultyPhoto:          r.Photo,
	}
}

/* ===================== Patch ===================== */

type PatchFacultyRequest struct {
	ID             string                      `json:"id"`
	Name           helper.PatchField[string]   `json:"name"`
	NameLocal      helper.PatchField[string]   `json:"nameLocal"`
	Position       helper.PatchField[string]   `json:"position"`
	Department     helper.PatchField[string]   `json:"department"`
	Email          helper.PatchField[string]   `json:"email"`
	Qualifications helper.PatchField[[]string] `json:"qualifications"`
	Experience     helper.PatchField[string]   `json:"experience"`
	Specialization helper.PatchField[string]   `json:"specialization"`
	Bio            helper.PatchField[string]   `json:"bio"`
	Grade          helper.PatchField[string]   `json:"grade"`
	Languages      helper.PatchField[[]string] `json:"languages"`
	Subjects       helper.PatchField[[]string] `json:"subjects"`
	Achievements   helper.PatchField[[]string] `json:"achievements"`
	Featured       helper.PatchField[bool]     `json:"featured"`
	Published      helper.PatchField[bool]     `json:"published"`
	Photo          helper.PatchField[string]   `json:"photo"`
}

func (p *PatchFacultyRequest) Validate(v *validator.Validate) error {
	if val, ok := p.Name.Get(); ok && (val == nil || strings.TrimSpace(*val) == "") {
		return helper.FieldError("name", "required")
	}
	if val, ok := p.Position.Get(); ok && (val == nil || strings.TrimSpace(*val) == "") {
		return helper.FieldError("position", "required")
	}
	if val, ok := p.Department.Get(); ok {
		if val == nil {
			return helper.FieldError("department", "required")
		}
		if _, known := model.NormalizeDepartment(*val); !known {
			return helper.FieldError("department", "oneof")
		}
	}
	if val, ok := p.Email.Get(); ok && val != nil && strings.TrimSpace(*val) != "" {
		if err := v.Var(strings.TrimSpace(*val), "email"); err != nil {
			return helper.FieldError("email", "email")
		}
	}
	return nil
}

func (p *PatchFacultyRequest) Columns() helper.PatchColumns {
	trim := func(s string) any { return strings.TrimSpace(s) }
	list := func(l []string) any { return helper.StringList(l) }

	cols := helper.PatchColumns{}
	helper.PutMapped(cols, "faculty_name", p.Name, trim)
	helper.Put(cols, "faculty_name_local", p.NameLocal)
	helper.PutMapped(cols, "faculty_position", p.Position, trim)
	helper.PutMapped(cols, "faculty_department", p.Department, func(s string) any {
		d, _ := model.NormalizeDepartment(s)
		return d
	})
	helper.Put(cols, "faculty_email", p.Email)
	helper.PutMapped(cols, "faculty_qualifications", p.Qualifications, list)
	helper.Put(cols, "faculty_experience", p.Experience)
	helper.Put(cols, "faculty_specialization", p.Specialization)
	helper.Put(cols, "faculty_bio", p.Bio)
	helper.Put(cols, "faculty_grade", p.Grade)
	helper.PutMapped(cols, "faculty_languages", p.Languages, list)
	helper.PutMapped(cols, "faculty_subjects", p.Subjects, list)
	helper.PutMapped(cols, "faculty_achievements", p.Achievements, list)
	helper.PutRequired(cols, "faculty_featured", p.Featured)
	helper.PutRequired(cols, "faculty_published", p.Published)
	helper.Put(cols, "faculty_photo", p.Photo)
	return cols
}
