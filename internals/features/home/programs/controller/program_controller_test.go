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

	database "schoolsite_backend/internals/databases"
	"schoolsite_backend/internals/features/home/programs/dto"
)

type fakeProgramService struct {
	calls []string
	limit int
}

func (f *fakeProgramService) ListPublished(_ context.Context, limit int) ([]dto.ProgramResponse, error) {
	f.calls = append(f.calls, "published")
	f.limit = limit
	return []dto.ProgramResponse{{Title: "Public"}}, nil
}

func (f *fakeProgramService) ListAll(_ context.Context, limit int) ([]dto.ProgramResponse, error) {
	f.calls = append(f.calls, "all")
	f.limit = limit
	return []dto.ProgramResponse{{Title: "Public"}, {Title: "Draft"}}, nil
}

func (f *fakeProgramService) GetByID(context.Context, uuid.UUID) (*dto.ProgramResponse, error) {
	f.calls = append(f.calls, "get")
	return nil, database.NotFound("programs.get")
}

func (f *fakeProgramService) GetPublished(context.Context, uuid.UUID) (*dto.ProgramResponse, error) {
	f.calls = append(f.calls, "get-published")
	return nil, database.NotFound("programs.get")
}

func (f *fakeProgramService) Create(_ context.Context, req dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	f.calls = append(f.calls, "create")
	return &dto.ProgramResponse{Title: req.Title, Tuition: req.Tuition.Ptr()}, nil
}

func (f *fakeProgramService) Update(_ context.Context, id uuid.UUID, _ dto.PatchProgramRequest) (*dto.ProgramResponse, error) {
	f.calls = append(f.calls, "update")
	return &dto.ProgramResponse{ID: id.String()}, nil
}

func (f *fakeProgramService) Delete(context.Context, uuid.UUID) error {
	f.calls = append(f.calls, "delete")
	return nil
}

func newApp(svc *fakeProgramService) *fiber.App {
	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	ctrl := NewProgramController(svc, "additionalPrograms", "additional program", zap.NewNop())
	app.Get("/x", ctrl.Get)
	app.Post("/x", ctrl.Create)
	app.Put("/x", ctrl.Update)
	app.Delete("/x", ctrl.Delete)
	return app
}

func call(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
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

func TestGetListVariants(t *testing.T) {
	svc := &fakeProgramService{}
	app := newApp(svc)

	status, body := call(t, app, http.MethodGet, "/x?limit=5", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["additionalPrograms"], 1)
	assert.Equal(t, 5, svc.limit)

	status, body = call(t, app, http.MethodGet, "/x?all=true", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["additionalPrograms"], 2)
	assert.Equal(t, []string{"published", "all"}, svc.calls)
}

func TestGetByIDNotFound(t *testing.T) {
	status, body := call(t, newApp(&fakeProgramService{}), http.MethodGet, "/x?id="+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "additional program not found", body["error"])
}

func TestGetByIDPublicVsAll(t *testing.T) {
	svc := &fakeProgramService{}
	app := newApp(svc)
	id := uuid.NewString()

	call(t, app, http.MethodGet, "/x?id="+id, "")
	call(t, app, http.MethodGet, "/x?id="+id+"&all=true", "")
	assert.Equal(t, []string{"get-published", "get"}, svc.calls)
}

func TestCreateAcceptsNumericTuition(t *testing.T) {
	status, body := call(t, newApp(&fakeProgramService{}), http.MethodPost, "/x", `{"title":"Chess","tuition":250000}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "250000", body["additionalPrograms"].(map[string]any)["tuition"])
}

func TestWritesWithoutID(t *testing.T) {
	svc := &fakeProgramService{}
	app := newApp(svc)

	status, _ := call(t, app, http.MethodPut, "/x", `{"title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodDelete, "/x", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, svc.calls)

	status, body := call(t, app, http.MethodDelete, "/x?id="+uuid.NewString(), "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
}
