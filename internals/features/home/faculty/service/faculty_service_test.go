package service

import (
	"context"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/dbtest"
	"schoolsite_backend/internals/features/home/faculty/dto"
	"schoolsite_backend/internals/features/home/faculty/model"
	helper "schoolsite_backend/internals/helpers"
)

func newFacultyService(t *testing.T) *FacultyService {
	t.Helper()
	return NewFacultyService(dbtest.Open(t, &model.FacultyModel{}))
}

func strPtr(s string) *string { return &s }

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	s := newFacultyService(t)

	var req dto.CreateFacultyRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{
		"name": "Amélie Durand",
		"nameLocal": "アメリ",
		"position": "Head of Languages",
		"department": "Languages",
		"email": "amelie@school.example",
		"qualifications": ["MA Linguistics"],
		"experience": "12 years",
		"specialization": "French literature",
		"bio": "Loves poetry",
		"grade": "A1",
		"languages": ["French", "English"],
		"subjects": ["French"],
		"achievements": ["Teacher of the year"],
		"featured": true,
		"published": true,
		"photo": "https://cdn.example.com/amelie.webp"
	}`), &req))

	created, err := s.Create(ctx, req)
	require.NoError(t, err)

	got, err := s.GetByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Amélie Durand", got.Name)
	assert.Equal(t, "アメリ", *got.NameLocal)
	assert.Equal(t, "Head of Languages", got.Position)
	assert.Equal(t, "languages", got.Department)
	assert.Equal(t, "amelie@school.example", *got.Email)
	assert.Equal(t, []string{"MA Linguistics"}, got.Qualifications)
	assert.Equal(t, "12 years", *got.Experience)
	assert.Equal(t, "French literature", *got.Specialization)
	assert.Equal(t, "Loves poetry", *got.Bio)
	assert.Equal(t, "A1", *got.Grade)
	assert.Equal(t, []string{"French", "English"}, got.Languages)
	assert.Equal(t, []string{"French"}, got.Subjects)
	assert.Equal(t, []string{"Teacher of the year"}, got.Achievements)
	assert.True(t, got.Featured)
	assert.True(t, got.Published)
	assert.Equal(t, "https://cdn.example.com/amelie.webp", *got.Photo)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestCreateRejectsUnknownDepartment(t *testing.T) {
	_, err := newFacultyService(t).Create(context.Background(), dto.CreateFacultyRequest{
		Name: "X", Position: "Chef", Department: "Cafeteria",
	})
	assert.ErrorIs(t, err, database.ErrValidationRejected)
}

func TestCreateRejectsBadEmail(t *testing.T) {
	_, err := newFacultyService(t).Create(context.Background(), dto.CreateFacultyRequest{
		Name: "X", Position: "Teacher", Department: "arts", Email: strPtr("not-an-email"),
	})
	assert.ErrorIs(t, err, database.ErrValidationRejected)
}

func seed(t *testing.T, s *FacultyService) {
	t.Helper()
	for _, r := range []dto.CreateFacultyRequest{
		{Name: "Cara", Position: "Teacher", Department: "Maths", Grade: strPtr("3"), Published: true},
		{Name: "Abe", Position: "Principal", Department: "Administration", Grade: strPtr("1"), Published: true, Featured: true},
		{Name: "Bea", Position: "Teacher", Department: "mathematics", Grade: strPtr("2"), Published: true},
		{Name: "Dan", Position: "Intern", Department: "Science", Grade: strPtr("4")},
	} {
		_, err := s.Create(context.Background(), r)
		require.NoError(t, err)
	}
}

func TestListSortedByGradeAndFiltered(t *testing.T) {
	ctx := context.Background()
	s := newFacultyService(t)
	seed(t, s)

	pub, err := s.ListPublished(ctx, FacultyQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Abe", "Bea", "Cara"}, names(pub))

	all, err := s.ListAll(ctx, FacultyQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Abe", "Bea", "Cara", "Dan"}, names(all))

	maths, err := s.ListPublished(ctx, FacultyQuery{Department: strPtr("Maths")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bea", "Cara"}, names(maths))

	featured := true
	feat, err := s.ListPublished(ctx, FacultyQuery{Featured: &featured, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"Abe"}, names(feat))

	_, err = s.ListPublished(ctx, FacultyQuery{Department: strPtr("Cafeteria")})
	assert.ErrorIs(t, err, database.ErrValidationRejected)
}

func TestPatchNormalizesDepartment(t *testing.T) {
	ctx := context.Background()
	s := newFacultyService(t)
	created, err := s.Create(ctx, dto.CreateFacultyRequest{Name: "Eve", Position: "Coach", Department: "sports", Bio: strPtr("old")})
	require.NoError(t, err)
	assert.Equal(t, "physical_education", created.Department)
	id := uuid.MustParse(created.ID)

	got, err := s.Update(ctx, id, dto.PatchFacultyRequest{
		Department: helper.Set("Student Support"),
		Bio:        helper.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "student_support", got.Department)
	assert.Nil(t, got.Bio)
	assert.Equal(t, "Coach", got.Position)

	_, err = s.Update(ctx, id, dto.PatchFacultyRequest{Department: helper.Set("Cafeteria")})
	assert.ErrorIs(t, err, database.ErrValidationRejected)
}

func names(items []dto.FacultyResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestGetPublishedHidesDrafts(t *testing.T) {
	ctx := context.Background()
	s := newFacultyService(t)
	draft, err := s.Create(ctx, dto.CreateFacultyRequest{Name: "New Hire", Position: "Teacher", Department: "arts"})
	require.NoError(t, err)

	_, err = s.GetPublished(ctx, uuid.MustParse(draft.ID))
	assert.ErrorIs(t, err, database.ErrNotFound)

	got, err := s.GetByID(ctx, uuid.MustParse(draft.ID))
	require.NoError(t, err)
	assert.Equal(t, "New Hire", got.Name)
}
