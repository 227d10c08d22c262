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
	"schoolsite_backend/internals/features/home/school_info/dto"
	"schoolsite_backend/internals/features/home/school_info/model"
)

func newSchoolInfoService(t *testing.T) (*SchoolInfoService, func() int64) {
	t.Helper()
	db := dbtest.Open(t, &model.SchoolInfoModel{})
	count := func() int64 {
		var n int64
		require.NoError(t, db.Model(&model.SchoolInfoModel{}).Count(&n).Error)
		return n
	}
	return NewSchoolInfoService(db), count
}

func decode(t *testing.T, raw string) dto.UpsertSchoolInfoRequest {
	t.Helper()
	var req dto.UpsertSchoolInfoRequest
	require.NoError(t, sonic.Unmarshal([]byte(raw), &req))
	return req
}

func TestGetBeforeUpsertIsNotFound(t *testing.T) {
	s, _ := newSchoolInfoService(t)
	_, err := s.Get(context.Background())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUpsertNeverAppends(t *testing.T) {
	ctx := context.Background()
	s, count := newSchoolInfoService(t)

	first, err := s.Upsert(ctx, decode(t, `{
		"name": "Lycée Horizon",
		"tagline": "Learning without borders",
		"missionStatement": "Curious minds",
		"localizedText": "Apprendre sans frontières",
		"contactInfo": {"email": "hello@horizon.example", "phone": "+33 1 23 45 67 89"},
		"features": [{"title": "Bilingual", "description": "FR/EN", "icon": "globe"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Lycée Horizon", first.Name)
	assert.Equal(t, "hello@horizon.example", first.ContactInfo["email"])
	require.Len(t, first.Features, 1)
	assert.Equal(t, "globe", first.Features[0].Icon)

	second, err := s.Upsert(ctx, decode(t, `{"name": "Horizon School", "features": []}`))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Horizon School", second.Name)
	assert.Empty(t, second.Features)
	assert.Empty(t, second.ContactInfo)
	assert.EqualValues(t, 1, count())

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Horizon School", got.Name)
}

func TestUpsertRequiresName(t *testing.T) {
	s, count := newSchoolInfoService(t)
	_, err := s.Upsert(context.Background(), decode(t, `{"tagline":"x"}`))
	assert.ErrorIs(t, err, database.ErrValidationRejected)
	assert.EqualValues(t, 0, count())

	_, err = s.Upsert(context.Background(), decode(t, `{"name":"x","features":[{"description":"no title"}]}`))
	assert.ErrorIs(t, err, database.ErrValidationRejected)
}

func TestPartialUpdate(t *testing.T) {
	ctx := context.Background()
	s, _ := newSchoolInfoService(t)
	created, err := s.Upsert(ctx, decode(t, `{"name":"A","tagline":"keep","contactInfo":{"email":"a@b.c"}}`))
	require.NoError(t, err)

	var patch dto.PatchSchoolInfoRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"contactInfo":{"phone":"123"}}`), &patch))
	got, err := s.Update(ctx, uuid.MustParse(created.ID), patch)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Tagline)
	assert.Equal(t, map[string]any{"phone": "123"}, got.ContactInfo)
}
