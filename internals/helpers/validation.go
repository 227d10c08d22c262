package helper

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator: nama field di pesan error memakai nama JSON (camelCase), bukan nama Go.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationMessage: "validation failed: slug (min), title (required)".
// ok=false kalau err bukan hasil validasi DTO (mis. constraint dari DB); pesan itu tidak boleh ke client.
func ValidationMessage(err error) (string, bool) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		parts := make([]string, 0, len(ve))
		for _, fe := range ve {
			parts = append(parts, fe.Field()+" ("+fe.Tag()+")")
		}
		sort.Strings(parts)
		return "validation failed: " + strings.Join(parts, ", "), true
	}
	var fe fieldError
	if errors.As(err, &fe) {
		// prefix dari wrap kita sendiri (mis. "achievements[2]: ") ikut dipertahankan
		return err.Error(), true
	}
	return "", false
}

type fieldError struct{ field, tag string }

func (e fieldError) Error() string { return "validation failed: " + e.field + " (" + e.tag + ")" }

// FieldError: error validasi manual untuk satu field (dipakai validasi patch).
func FieldError(field, tag string) error { return fieldError{field: field, tag: tag} }
