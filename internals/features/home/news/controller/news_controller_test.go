package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/features/home/news/dto"
	"schoolsite_backend/internals/features/home/news/service"
	helper "schoolsite_backend/internals/helpers"
)

type fakeNewsService struct {
	calls     []string
	createErr error
	item      *dto.NewsResponse
	patched   *dto.PatchNewsRequest
}

func (f *fakeNewsService) GetByID(_ context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	f.calls = append(f.calls, "get")
	if f.item == nil || f.item.ID != id.String() {
		return nil, database.NotFound("news.get")
	}
	return f.item, nil
}

func (f *fakeNewsService) GetBySlug(_ context.Context, slug string) (*dto.NewsResponse, error) {
	f.calls = append(f.calls, "slug")
	if f.item == nil || f.item.Slug != slug {
		return nil, database.NotFound("news.find")
	}
	return f.item, nil
}

func (f *fakeNewsService) GetPublished(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	item, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.Published {
		return nil, database.NotFound("news.get")
	}
	return item, nil
}

func (f *fakeNewsService) GetPublishedBySlug(ctx context.Context, slug string) (*dto.NewsResponse, error) {
	item, err := f.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !item.Published {
		return nil, database.NotFound("news.find")
	}
	return item, nil
}

func (f *fakeNewsService) Create(_ context.Context, req dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.NewsResponse{ID: uuid.NewString(), Title: req.Title}, nil
}

func (f *fakeNewsService) Update(_ context.Context, id uuid.UUID, patch dto.PatchNewsRequest) (*dto.NewsResponse, error) {
	f.calls = append(f.calls, "update")
	f.patched = &patch
	return &dto.NewsResponse{ID: id.String()}, nil
}

func (f *fakeNewsService) Delete(context.Context, uuid.UUID) error {
	f.calls = append(f.calls, "delete")
	return nil
}

type fakeReader struct {
	items []dto.NewsResponse
	err   error
	last  service.NewsQuery
}

func (f *fakeReader) FetchNews(_ context.Context, q service.NewsQuery) ([]dto.NewsResponse, error) {
	f.last = q
	return f.items, f.err
}

func newTestApp(svc *fakeNewsService, reader *fakeReader) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler(zap.NewNop()),
	})
	ctrl := NewNewsController(svc, reader, zap.NewNop())
	app.Get("/api/news", ctrl.Get)
	app.Post("/api/news", ctrl.Create)
	app.Put("/api/news", ctrl.Update)
	app.Delete("/api/news", ctrl.Delete)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestGetListUsesReader(t *testing.T) {
	reader := &fakeReader{items: []dto.NewsResponse{{ID: "1", Title: "Hello"}}}
	app := newTestApp(&fakeNewsService{}, reader)

	status, body := do(t, app, http.MethodGet, "/api/news?category=sport&featured=true&limit=3", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["news"], 1)
	assert.Equal(t, "sport", *reader.last.Category)
	assert.True(t, *reader.last.Featured)
	assert.Equal(t, 3, reader.last.Limit)
	assert.False(t, reader.last.IncludeUnpublished)
}

func TestGetListAll(t *testing.T) {
	reader := &fakeReader{items: []dto.NewsResponse{}}
	app := newTestApp(&fakeNewsService{}, reader)

	status, body := do(t, app, http.MethodGet, "/api/news?all=true", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["news"])
	assert.True(t, reader.last.IncludeUnpublished)
}

func TestGetBadQuery(t *testing.T) {
	app := newTestApp(&fakeNewsService{}, &fakeReader{})

	for _, target := range []string{"/api/news?limit=abc", "/api/news?featured=maybe", "/api/news?id=nope"} {
		status, body := do(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, status, target)
		assert.NotEmpty(t, body["error"])
	}
}

func TestGetByIDAndSlug(t *testing.T) {
	item := &dto.NewsResponse{ID: uuid.NewString(), Slug: "open-day", Title: "Open Day", Published: true}
	app := newTestApp(&fakeNewsService{item: item}, &fakeReader{})

	status, body := do(t, app, http.MethodGet, "/api/news?id="+item.ID, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Open Day", body["news"].(map[string]any)["title"])

	status, _ = do(t, app, http.MethodGet, "/api/news?slug=open-day", "")
	assert.Equal(t, http.StatusOK, status)

	status, body = do(t, app, http.MethodGet, "/api/news?id="+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "news not found", body["error"])
}

func TestGetDraftDetailHiddenWithoutAll(t *testing.T) {
	draft := &dto.NewsResponse{ID: uuid.NewString(), Slug: "secret-draft", Title: "Secret Draft"}
	app := newTestApp(&fakeNewsService{item: draft}, &fakeReader{})

	for _, target := range []string{"/api/news?id=" + draft.ID, "/api/news?slug=secret-draft"} {
		status, body := do(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, status, target)
		assert.Equal(t, "news not found", body["error"])

		status, body = do(t, app, http.MethodGet, target+"&all=true", "")
		assert.Equal(t, http.StatusOK, status, target)
		assert.Equal(t, "Secret Draft", body["news"].(map[string]any)["title"])
	}
}

func TestGetStoreDownWithoutSnapshot(t *testing.T) {
	reader := &fakeReader{err: errors.Join(
		&database.StoreError{Kind: database.ErrStoreUnavailable, Err: errors.New("dial tcp: refused")},
		errors.New("open data/news.json: no such file"),
	)}
	app := newTestApp(&fakeNewsService{}, reader)

	status, body := do(t, app, http.MethodGet, "/api/news", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "content store unavailable", body["error"])
}

func TestCreate(t *testing.T) {
	svc := &fakeNewsService{}
	app := newTestApp(svc, &fakeReader{})

	status, body := do(t, app, http.MethodPost, "/api/news", `{"title":"Hi","content":"x"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Hi", body["news"].(map[string]any)["title"])
}

func TestCreateErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{database.Rejected("news.create", helper.FieldError("title", "required")), http.StatusBadRequest},
		{&database.StoreError{Kind: database.ErrDuplicate}, http.StatusConflict},
		{&database.StoreError{Kind: database.ErrQueryRejected, Err: errors.New("secret sql detail")}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		app := newTestApp(&fakeNewsService{createErr: tt.err}, &fakeReader{})
		status, body := do(t, app, http.MethodPost, "/api/news", `{"title":"Hi"}`)
		assert.Equal(t, tt.status, status)
		assert.NotContains(t, body["error"], "secret")
	}
}

func TestCreateMalformedBody(t *testing.T) {
	svc := &fakeNewsService{}
	app := newTestApp(svc, &fakeReader{})

	status, _ := do(t, app, http.MethodPost, "/api/news", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, svc.calls)
}

func TestUpdateRequiresID(t *testing.T) {
	svc := &fakeNewsService{}
	app := newTestApp(svc, &fakeReader{})

	status, body := do(t, app, http.MethodPut, "/api/news", `{"title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "id is required", body["error"])
	assert.Empty(t, svc.calls)

	id := uuid.NewString()
	status, _ = do(t, app, http.MethodPut, "/api/news", `{"id":"`+id+`","featuredImage":null}`)
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, svc.patched)
	assert.True(t, svc.patched.FeaturedImage.Present)
	assert.False(t, svc.patched.Title.Present)
}

func TestDeleteRequiresIDBeforeStore(t *testing.T) {
	svc := &fakeNewsService{}
	app := newTestApp(svc, &fakeReader{})

	status, body := do(t, app, http.MethodDelete, "/api/news", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "id is required", body["error"])
	assert.Empty(t, svc.calls)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := &fakeNewsService{}
	app := newTestApp(svc, &fakeReader{})
	id := uuid.NewString()

	for i := 0; i < 2; i++ {
		status, body := do(t, app, http.MethodDelete, "/api/news?id="+id, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, id, body["id"])
	}
}
