package helper

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

var defaultFileFields = []string{"file", "image", "upload"}

// GetFormFile mencari file dari beberapa kemungkinan field form.
// Tidak ada file → (nil, nil).
func GetFormFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "use multipart/form-data")
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultFileFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}
