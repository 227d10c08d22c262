// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	database "schoolsite_backend/internals/databases"
)

/* ===============================
   JSON responses (envelope per entity)
=================================*/

// JsonEnvelope: { "<key>": data }
func JsonEnvelope(c *fiber.Ctx, status int, key string, data any) error {
	return c.Status(status).JSON(fiber.Map{key: data})
}

func JsonOK(c *fiber.Ctx, key string, data any) error {
	return JsonEnvelope(c, fiber.StatusOK, key, data)
}

func JsonCreated(c *fiber.Ctx, key string, data any) error {
	return JsonEnvelope(c, fiber.StatusCreated, key, data)
}

func JsonDeleted(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"id":      id,
	})
}

// JsonError: { "error": message }
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

/* ===============================
   Error translation (satu-satunya tempat)
=================================*/

// ServiceErrorStatus memetakan taksonomi store ke status HTTP + pesan aman untuk client.
func ServiceErrorStatus(err error, entity string) (int, string) {
	switch {
	case errors.Is(err, database.ErrValidationRejected):
		var se *database.StoreError
		if errors.As(err, &se) && se.Err != nil {
			if msg, ok := ValidationMessage(se.Err); ok {
				return fiber.StatusBadRequest, msg
			}
		}
		return fiber.StatusBadRequest, "invalid " + entity
	case errors.Is(err, database.ErrNotFound):
		return fiber.StatusNotFound, entity + " not found"
	case errors.Is(err, database.ErrDuplicate):
		return fiber.StatusConflict, entity + " already exists"
	case errors.Is(err, database.ErrStoreUnavailable):
		return fiber.StatusInternalServerError, "content store unavailable"
	default:
		return fiber.StatusInternalServerError, "failed to process " + entity
	}
}

// WriteServiceError: log detail internal, balas JSON yang aman.
func WriteServiceError(c *fiber.Ctx, log *zap.Logger, entity string, err error) error {
	status, msg := ServiceErrorStatus(err, entity)
	fields := []zap.Field{
		zap.String("entity", entity),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(err),
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		fields = append(fields, zap.String("request_id", rid))
	}
	if status >= fiber.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Info("request rejected", fields...)
	}
	return JsonError(c, status, msg)
}

// ErrorHandler global fiber: *fiber.Error → JSON, sisanya 500 tanpa detail.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return JsonError(c, fe.Code, fe.Message)
		}
		log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
