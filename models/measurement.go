package models

import "strings"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender maps a raw radio value onto a Gender. Only "male" selects the
// male coefficients; anything else, blank included, is female.
func ParseGender(raw string) Gender {
	if strings.ToLower(strings.TrimSpace(raw)) == string(GenderMale) {
		return GenderMale
	}
	return GenderFemale
}

// Measurement is one form submission. Age in years, height in cm, weight in kg.
type Measurement struct {
	Gender Gender  `json:"gender"`
	Age    int     `json:"age"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}
