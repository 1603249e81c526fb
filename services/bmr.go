package services

import (
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/models"
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/utils"
)

const (
	MsgInvalidAge    = "please enter a valid age (1–120)"
	MsgInvalidHeight = "please enter a valid height (50–250 cm)"
	MsgInvalidWeight = "please enter a valid weight (20–300 kg)"
)

const (
	MinAge, MaxAge       = 1, 120
	MinHeight, MaxHeight = 50.0, 250.0
	MinWeight, MaxWeight = 20.0, 300.0
)

// Validate checks age, height and weight in that order and reports the
// first failure. Zero counts as missing.
func Validate(age int, height, weight float64) models.ValidationResult {
	switch {
	case age == 0 || age < MinAge || age > MaxAge:
		return invalid(models.FieldAge, MsgInvalidAge)
	case height == 0 || height < MinHeight || height > MaxHeight:
		return invalid(models.FieldHeight, MsgInvalidHeight)
	case weight == 0 || weight < MinWeight || weight > MaxWeight:
		return invalid(models.FieldWeight, MsgInvalidWeight)
	}
	return models.ValidationResult{IsValid: true}
}

func invalid(field, msg string) models.ValidationResult {
	return models.ValidationResult{IsValid: false, Message: msg, Field: field}
}

// CalculateBMR applies the Harris-Benedict equation. Inputs are assumed to
// have passed Validate. The result is in kcal/day.
func CalculateBMR(gender models.Gender, age int, height, weight float64) int {
	a := float64(age)
	// The float64 conversions round each product before the sum, which
	// stops the compiler fusing them into multiply-add instructions.
	var bmr float64
	if gender == models.GenderMale {
		bmr = 88.362 + float64(13.397*weight) + float64(4.799*height) - float64(5.677*a)
	} else {
		bmr = 447.593 + float64(9.247*weight) + float64(3.098*height) - float64(4.330*a)
	}
	return utils.RoundHalfUp(bmr)
}

// ParseMeasurement turns raw form values into a Measurement. It never
// fails; bad numbers become 0 and are caught by Validate.
func ParseMeasurement(rawGender, rawAge, rawHeight, rawWeight string) models.Measurement {
	return models.Measurement{
		Gender: models.ParseGender(rawGender),
		Age:    utils.ParseFormInt(rawAge),
		Height: utils.ParseFormFloat(rawHeight),
		Weight: utils.ParseFormFloat(rawWeight),
	}
}

// PerformCalculation runs validate-then-calculate over raw form values.
func PerformCalculation(rawGender, rawAge, rawHeight, rawWeight string) models.CalculationResult {
	m := ParseMeasurement(rawGender, rawAge, rawHeight, rawWeight)
	v := Validate(m.Age, m.Height, m.Weight)
	if !v.IsValid {
		return models.CalculationResult{OK: false, Message: v.Message, Field: v.Field}
	}
	return models.CalculationResult{OK: true, BMR: CalculateBMR(m.Gender, m.Age, m.Height, m.Weight)}
}
