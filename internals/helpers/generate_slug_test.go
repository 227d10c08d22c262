package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := map[string]string{
		"My Big Event!":                "my-big-event",
		"  Leading/Trailing--Dashes  ": "leading-trailing-dashes",
		"Hello World!":                 "hello-world",
		"  Café  Olé  ":                "cafe-ole",
		"Sports Day 2024 -- Results":   "sports-day-2024-results",
		"___":                          "",
		"Ñandú & Co.":                  "nandu-co",
		"already-a-slug":               "already-a-slug",
	}
	for in, want := range tests {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestGenerateSlugIsIdempotent(t *testing.T) {
	s := GenerateSlug("Élève du Mois: Janvier")
	assert.Equal(t, "eleve-du-mois-janvier", s)
	assert.Equal(t, s, GenerateSlug(s))
}
