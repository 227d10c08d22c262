package controller

import (
	"context"
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

	"schoolsite_backend/internals/features/home/achievements/dto"
	"schoolsite_backend/internals/features/home/achievements/service"
)

type fakeAchievementService struct {
	calls    []string
	replaced []dto.CreateAchievementRequest
}

func (f *fakeAchievementService) ListPublished(context.Context, service.AchievementQuery) ([]dto.AchievementResponse, error) {
	f.calls = append(f.calls, "list")
	return []dto.AchievementResponse{}, nil
}

func (f *fakeAchievementService) ListAll(context.Context, service.AchievementQuery) ([]dto.AchievementResponse, error) {
	f.calls = append(f.calls, "all")
	return []dto.AchievementResponse{}, nil
}

func (f *fakeAchievementService) GetByID(context.Context, uuid.UUID) (*dto.AchievementResponse, error) {
	f.calls = append(f.calls, "get")
	return &dto.AchievementResponse{}, nil
}

func (f *fakeAchievementService) Create(_ context.Context, req dto.CreateAchievementRequest) (*dto.AchievementResponse, error) {
	f.calls = append(f.calls, "create")
	return &dto.AchievementResponse{Title: req.Title}, nil
}

func (f *fakeAchievementService) ReplaceAll(_ context.Context, items []dto.CreateAchievementRequest) ([]dto.AchievementResponse, error) {
	f.calls = append(f.calls, "replace")
	f.replaced = items
	out := make([]dto.AchievementResponse, 0, len(items))
	for i, it := range items {
		out = append(out, dto.AchievementResponse{Title: it.Title, DisplayOrder: i})
	}
	return out, nil
}

func (f *fakeAchievementService) Update(context.Context, uuid.UUID, dto.PatchAchievementRequest) (*dto.AchievementResponse, error) {
	f.calls = append(f.calls, "update")
	return &dto.AchievementResponse{}, nil
}

func (f *fakeAchievementService) Delete(context.Context, uuid.UUID) error {
	f.calls = append(f.calls, "delete")
	return nil
}

func post(t *testing.T, svc *fakeAchievementService, body string) (int, map[string]any) {
	t.Helper()
	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	ctrl := NewAchievementController(svc, zap.NewNop())
	app.Post("/api/achievements", ctrl.Post)
	app.Delete("/api/achievements", ctrl.Delete)

	req := httptest.NewRequest(http.MethodPost, "/api/achievements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestPostExplicitCreate(t *testing.T) {
	svc := &fakeAchievementService{}
	status, body := post(t, svc, `{"action":"create","title":"Chess Cup"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Chess Cup", body["achievements"].(map[string]any)["title"])
	assert.Equal(t, []string{"create"}, svc.calls)
}

func TestPostWithoutActionCreates(t *testing.T) {
	svc := &fakeAchievementService{}
	status, _ := post(t, svc, `{"title":"Spelling Bee"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, []string{"create"}, svc.calls)
}

func TestPostExplicitReplace(t *testing.T) {
	svc := &fakeAchievementService{}
	status, body := post(t, svc, `{"action":"replace","achievements":[{"title":"A"},{"title":"B"}]}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["achievements"], 2)
	assert.Len(t, svc.replaced, 2)
}

func TestPostLegacyArrayBodyReplaces(t *testing.T) {
	svc := &fakeAchievementService{}
	status, _ := post(t, svc, `{"achievements":[{"title":"Only"}]}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"replace"}, svc.calls)
	require.Len(t, svc.replaced, 1)
	assert.Equal(t, "Only", svc.replaced[0].Title)
}

func TestPostBadAction(t *testing.T) {
	svc := &fakeAchievementService{}
	status, body := post(t, svc, `{"action":"merge"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "action")
	assert.Empty(t, svc.calls)

	status, _ = post(t, svc, `{"action":"replace"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, svc.calls)
}
