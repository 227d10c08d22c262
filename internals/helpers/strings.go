package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// StringList: trim tiap item, buang yang kosong. Tidak pernah nil supaya JSON jadi [] bukan null.
func StringList(in []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(in))
	for _, s := range in {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ToStrings: kebalikan StringList untuk response DTO.
func ToStrings(in datatypes.JSONSlice[string]) []string {
	if in == nil {
		return []string{}
	}
	return []string(in)
}

// FlexString menerima string atau angka JSON; angka disimpan sebagai teks apa adanya ("1500000").
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		*f = ""
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("expected string or number, got %s", raw)
	}
	*f = FlexString(raw)
	return nil
}

// Ptr: nil kalau kosong (kolom nullable).
func (f FlexString) Ptr() *string {
	if f == "" {
		return nil
	}
	s := string(f)
	return &s
}
