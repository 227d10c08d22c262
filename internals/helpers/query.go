package helper

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	errMissingID = errors.New("id is required")
	errInvalidID = errors.New("id must be a valid UUID")
)

// ParseID: id wajib & harus UUID.
func ParseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errMissingID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

// QueryBool: nil kalau param tidak dikirim.
func QueryBool(c *fiber.Ctx, key string) (*bool, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return nil, errors.New(key + " must be true or false")
	}
	return &b, nil
}

// QueryFlag: ?all / ?all=true → true, selain itu false.
func QueryFlag(c *fiber.Ctx, key string) bool {
	if !c.Context().QueryArgs().Has(key) {
		return false
	}
	v := strings.ToLower(strings.TrimSpace(c.Query(key)))
	return v == "" || v == "1" || v == "true" || v == "yes"
}

// QueryLimit: 0 = tanpa batas. Nilai negatif / bukan angka → error.
func QueryLimit(c *fiber.Ctx) (int, error) {
	v := strings.TrimSpace(c.Query("limit"))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	return n, nil
}

// QueryString: nil kalau kosong.
func QueryString(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}
