package helper

import (
	"github.com/bytedance/sonic"
)

/* =========================================================
   PatchField (tri-state): absent | null | value
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := sonic.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// Set dipakai test / caller internal untuk membangun patch tanpa JSON.
func Set[T any](v T) PatchField[T] { return PatchField[T]{Present: true, Value: &v} }

// Null: field dikirim eksplisit sebagai null.
func Null[T any]() PatchField[T] { return PatchField[T]{Present: true} }

// PatchColumns mengumpulkan kolom storage dari field yang dikirim saja.
type PatchColumns map[string]any

// Put: nullable → nil boleh (clear kolom).
func Put[T any](cols PatchColumns, column string, f PatchField[T]) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		cols[column] = nil
		return
	}
	cols[column] = *f.Value
}

// PutRequired: kolom NOT NULL → null diabaikan.
func PutRequired[T any](cols PatchColumns, column string, f PatchField[T]) {
	if f.Present && f.Value != nil {
		cols[column] = *f.Value
	}
}

// PutMapped: seperti PutRequired tapi nilai diubah dulu (mis. []string → JSONSlice).
func PutMapped[T any](cols PatchColumns, column string, f PatchField[T], conv func(T) any) {
	if f.Present && f.Value != nil {
		cols[column] = conv(*f.Value)
	}
}
