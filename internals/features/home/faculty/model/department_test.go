package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDepartment(t *testing.T) {
	tests := map[string]Department{
		"Early Years":         DeptEarlyYears,
		"early_years":         DeptEarlyYears,
		"Kindergarten":        DeptEarlyYears,
		"  Mathematics ":      DeptMathematics,
		"Maths":               DeptMathematics,
		"P.E.":                DeptPhysicalEducation,
		"Physical Education":  DeptPhysicalEducation,
		"Student Support":     DeptStudentSupport,
		"Counselling":         DeptStudentSupport,
		"Languages":           DeptLanguages,
		"High School":         DeptSecondary,
		"Administration":      DeptAdministration,
		"Creative Arts":       DeptArts,
		"Social Studies":      DeptHumanities,
	}
	for in, want := range tests {
		got, ok := NormalizeDepartment(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalizeDepartmentUnknown(t *testing.T) {
	for _, in := range []string{"", "   ", "Cafeteria", "42"} {
		_, ok := NormalizeDepartment(in)
		assert.False(t, ok, in)
	}
}

func TestEveryCodeNormalizesToItself(t *testing.T) {
	for _, d := range Departments {
		got, ok := NormalizeDepartment(string(d))
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
}
