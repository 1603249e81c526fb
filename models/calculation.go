package models

// CalculationResult is what the presentation layer receives: either a BMR
// in kcal/day or the message to show the user.
type CalculationResult struct {
	OK      bool   `json:"ok"`
	BMR     int    `json:"bmr"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// CalculationRequest carries raw form values. Numeric fields accept JSON
// numbers, strings or null.
type CalculationRequest struct {
	Gender string     `json:"gender"`
	Age    FlexString `json:"age"`
	Height FlexString `json:"height"`
	Weight FlexString `json:"weight"`
}
