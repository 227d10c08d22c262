package service

import (
	"context"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/databases/dbtest"
	"schoolsite_backend/internals/features/home/news/dto"
	"schoolsite_backend/internals/features/home/news/model"
	helper "schoolsite_backend/internals/helpers"
)

func newNewsService(t *testing.T) *NewsService {
	t.Helper()
	return NewNewsService(dbtest.Open(t, &model.NewsModel{}))
}

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, s *NewsService, req dto.CreateNewsRequest) *dto.NewsResponse {
	t.Helper()
	out, err := s.Create(context.Background(), req)
	require.NoError(t, err)
	return out
}

func TestCreateThenGetReturnsAllFields(t *testing.T) {
	ctx := context.Background()
	s := newNewsService(t)
	published := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	created := mustCreate(t, s, dto.CreateNewsRequest{
		Title:         "  Science Fair Winners ",
		TitleLocal:    strPtr("Lauréats de la foire"),
		Excerpt:       "Our students shine",
		Content:       "Full story",
		FeaturedImage: strPtr("https://cdn.example.com/fair.webp"),
		Category:      "academics",
		Tags:          []string{"science", " fair "},
		Author:        "Communications",
		Featured:      true,
		Published:     true,
		PublishedAt:   &published,
	})

	got, err := s.GetByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Science Fair Winners", got.Title)
	assert.Equal(t, "Lauréats de la foire", *got.TitleLocal)
	assert.Equal(t, "science-fair-winners", got.Slug)
	assert.Equal(t, "Our students shine", got.Excerpt)
	assert.Equal(t, "Full story", got.Content)
	assert.Equal(t, "https://cdn.example.com/fair.webp", *got.FeaturedImage)
	assert.Equal(t, "academics", got.Category)
	assert.Equal(t, []string{"science", "fair"}, got.Tags)
	assert.Equal(t, "Communications", got.Author)
	assert.True(t, got.Featured)
	assert.True(t, got.Published)
	assert.True(t, got.PublishedAt.Equal(published))
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestCreateDefaultsPublishedAtAndTags(t *testing.T) {
	s := newNewsService(t)
	out := mustCreate(t, s, dto.CreateNewsRequest{Title: "Open Day", Content: "Come visit"})

	assert.False(t, out.PublishedAt.IsZero())
	assert.NotNil(t, out.Tags)
	assert.Empty(t, out.Tags)
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	_, err := newNewsService(t).Create(context.Background(), dto.CreateNewsRequest{Content: "no title"})
	assert.ErrorIs(t, err, database.ErrValidationRejected)
}

func TestCreateDuplicateSlug(t *testing.T) {
	s := newNewsService(t)
	mustCreate(t, s, dto.CreateNewsRequest{Title: "Sports Day", Content: "a"})

	_, err := s.Create(context.Background(), dto.CreateNewsRequest{Title: "Sports  day!", Content: "b"})
	assert.ErrorIs(t, err, database.ErrDuplicate)
}

func TestGetBySlug(t *testing.T) {
	s := newNewsService(t)
	created := mustCreate(t, s, dto.CreateNewsRequest{Title: "Spring Concert", Content: "music"})

	got, err := s.GetBySlug(context.Background(), "spring-concert")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestEmptyPatchLeavesRecordUnchanged(t *testing.T) {
	ctx := context.Background()
	s := newNewsService(t)
	created := mustCreate(t, s, dto.CreateNewsRequest{Title: "Unchanged", Content: "same", Tags: []string{"x"}})
	id := uuid.MustParse(created.ID)

	before, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	beforeJSON, err := sonic.Marshal(before)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	var patch dto.PatchNewsRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"id":"`+created.ID+`"}`), &patch))
	_, err = s.Update(ctx, id, patch)
	require.NoError(t, err)

	after, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	afterJSON, err := sonic.Marshal(after)
	require.NoError(t, err)

	assert.Equal(t, string(beforeJSON), string(afterJSON))
}

func TestPartialUpdate(t *testing.T) {
	ctx := context.Background()
	s := newNewsService(t)
	created := mustCreate(t, s, dto.CreateNewsRequest{
		Title:         "Before",
		Content:       "body",
		FeaturedImage: strPtr("https://cdn.example.com/a.webp"),
		Category:      "events",
	})
	id := uuid.MustParse(created.ID)

	var patch dto.PatchNewsRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"title":"After","featuredImage":null,"published":true}`), &patch))
	got, err := s.Update(ctx, id, patch)
	require.NoError(t, err)

	assert.Equal(t, "After", got.Title)
	assert.Nil(t, got.FeaturedImage)
	assert.True(t, got.Published)
	assert.Equal(t, "body", got.Content)
	assert.Equal(t, "events", got.Category)
	assert.Equal(t, created.Slug, got.Slug, "slug is not re-derived on title change")
}

func TestUpdateRejectsBlankTitle(t *testing.T) {
	s := newNewsService(t)
	created := mustCreate(t, s, dto.CreateNewsRequest{Title: "T", Content: "c"})

	_, err := s.Update(context.Background(), uuid.MustParse(created.ID), dto.PatchNewsRequest{Title: helper.Set("  ")})
	assert.ErrorIs(t, err, database.ErrValidationRejected)
}

func TestUpdateUnknownIsNotFound(t *testing.T) {
	_, err := newNewsService(t).Update(context.Background(), uuid.New(), dto.PatchNewsRequest{Title: helper.Set("x")})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteUnknownSucceeds(t *testing.T) {
	assert.NoError(t, newNewsService(t).Delete(context.Background(), uuid.New()))
}

func TestListPublishedFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	s := newNewsService(t)
	day := func(d int) *time.Time { v := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC); return &v }

	mustCreate(t, s, dto.CreateNewsRequest{Title: "Old", Content: "c", Published: true, PublishedAt: day(1), Category: "sport"})
	mustCreate(t, s, dto.CreateNewsRequest{Title: "New", Content: "c", Published: true, PublishedAt: day(20), Featured: true})
	mustCreate(t, s, dto.CreateNewsRequest{Title: "Mid", Content: "c", Published: true, PublishedAt: day(10), Category: "sport"})
	mustCreate(t, s, dto.CreateNewsRequest{Title: "Draft", Content: "c", Published: false, PublishedAt: day(30)})

	list, err := s.ListPublished(ctx, NewsQuery{IncludeUnpublished: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"New", "Mid", "Old"}, titles(list))

	all, err := s.ListAll(ctx, NewsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Draft", "New", "Mid", "Old"}, titles(all))

	sport, err := s.ListPublished(ctx, NewsQuery{Category: strPtr("sport"), Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mid"}, titles(sport))

	featured := true
	feat, err := s.ListPublished(ctx, NewsQuery{Featured: &featured})
	require.NoError(t, err)
	assert.Equal(t, []string{"New"}, titles(feat))
}

func titles(items []dto.NewsResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestGetPublishedHidesDrafts(t *testing.T) {
	ctx := context.Background()
	s := newNewsService(t)
	draft := mustCreate(t, s, dto.CreateNewsRequest{Title: "Secret Draft", Content: "c"})
	live := mustCreate(t, s, dto.CreateNewsRequest{Title: "Live Story", Content: "c", Published: true})

	_, err := s.GetPublishedBySlug(ctx, "secret-draft")
	assert.ErrorIs(t, err, database.ErrNotFound)
	_, err = s.GetPublished(ctx, uuid.MustParse(draft.ID))
	assert.ErrorIs(t, err, database.ErrNotFound)

	got, err := s.GetPublishedBySlug(ctx, "live-story")
	require.NoError(t, err)
	assert.Equal(t, live.ID, got.ID)

	// jalur admin tetap bisa melihat draft
	got, err = s.GetBySlug(ctx, "secret-draft")
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
}
