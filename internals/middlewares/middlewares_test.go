package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	helper "schoolsite_backend/internals/helpers"
)

func TestRequestIDReusesHeader(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestid").(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestTimeoutSetsDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(Timeout(2 * time.Second))

	var deadline time.Time
	var ok bool
	app.Get("/", func(c *fiber.Ctx) error {
		deadline, ok = c.UserContext().Deadline()
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
}

func TestTimeoutCancelsSlowWork(t *testing.T) {
	app := fiber.New()
	app.Use(Timeout(20 * time.Millisecond))
	app.Get("/", func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		if c.UserContext().Err() == context.DeadlineExceeded {
			return c.SendStatus(fiber.StatusGatewayTimeout)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode)
}

func TestGlobalRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(GlobalRateLimiter(2))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestRecoveryMiddlewareReturns500(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler(zap.NewNop())})
	app.Use(RecoveryMiddleware(zap.New(core)))
	app.Get("/", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, 1, logs.FilterMessage("💥 panic").Len())
}
