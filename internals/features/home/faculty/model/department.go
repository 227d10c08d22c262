package model

import (
	"strings"

	helper "schoolsite_backend/internals/helpers"
)

type Department string

const (
	DeptAdministration    Department = "administration"
	DeptEarlyYears        Department = "early_years"
	DeptPrimary           Department = "primary"
	DeptSecondary         Department = "secondary"
	DeptLanguages         Department = "languages"
	DeptSciences          Department = "sciences"
	DeptMathematics       Department = "mathematics"
	DeptHumanities        Department = "humanities"
	DeptArts              Department = "arts"
	DeptPhysicalEducation Department = "physical_education"
	DeptStudentSupport    Department = "student_support"
)

var Departments = []Department{
	DeptAdministration, DeptEarlyYears, DeptPrimary, DeptSecondary, DeptLanguages, DeptSciences,
	DeptMathematics, DeptHumanities, DeptArts, DeptPhysicalEducation, DeptStudentSupport,
}

// nama bebas yang sering muncul di data lama → kode
var departmentAliases = map[string]Department{
	"admin":               DeptAdministration,
	"leadership":          DeptAdministration,
	"management":          DeptAdministration,
	"office":              DeptAdministration,
	"early_years":         DeptEarlyYears,
	"early_childhood":     DeptEarlyYears,
	"kindergarten":        DeptEarlyYears,
	"preschool":           DeptEarlyYears,
	"nursery":             DeptEarlyYears,
	"elementary":          DeptPrimary,
	"primary_school":      DeptPrimary,
	"secondary_school":    DeptSecondary,
	"middle_school":       DeptSecondary,
	"high_school":         DeptSecondary,
	"language":            DeptLanguages,
	"english":             DeptLanguages,
	"french":              DeptLanguages,
	"foreign_languages":   DeptLanguages,
	"science":             DeptSciences,
	"stem":                DeptSciences,
	"biology":             DeptSciences,
	"chemistry":           DeptSciences,
	"physics":             DeptSciences,
	"math":                DeptMathematics,
	"maths":               DeptMathematics,
	"history":             DeptHumanities,
	"geography":           DeptHumanities,
	"social_studies":      DeptHumanities,
	"art":                 DeptArts,
	"music":               DeptArts,
	"drama":               DeptArts,
	"creative_arts":       DeptArts,
	"pe":                  DeptPhysicalEducation,
	"sport":               DeptPhysicalEducation,
	"sports":              DeptPhysicalEducation,
	"physical_education":  DeptPhysicalEducation,
	"counseling":          DeptStudentSupport,
	"counselling":         DeptStudentSupport,
	"learning_support":    DeptStudentSupport,
	"special_education":   DeptStudentSupport,
	"student_services":    DeptStudentSupport,
	"pastoral_care":       DeptStudentSupport,
	"student_support":     DeptStudentSupport,
}

// NormalizeDepartment memetakan teks bebas ("Early Years", "P.E.", "maths") ke kode departemen.
// false kalau tidak dikenali.
func NormalizeDepartment(name string) (Department, bool) {
	key := strings.ReplaceAll(helper.GenerateSlug(name), "-", "_")
	if key == "" {
		return "", false
	}
	for _, d := range Departments {
		if string(d) == key {
			return d, true
		}
	}
	if d, ok := departmentAliases[key]; ok {
		return d, true
	}
	// "P.E." → "p_e"
	if d, ok := departmentAliases[strings.ReplaceAll(key, "_", "")]; ok {
		return d, true
	}
	return "", false
}
