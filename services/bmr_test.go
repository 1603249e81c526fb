package services

import (
	"testing"

	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/models"

	"github.com/stretchr/testify/suite"
)

type ValidateSuite struct {
	suite.Suite
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func (s *ValidateSuite) TestAcceptsInclusiveBounds() {
	for _, tc := range []struct {
		age            int
		height, weight float64
	}{
		{1, 50, 20},
		{120, 250, 300},
		{30, 175, 70},
		{MinAge, MaxHeight, MinWeight},
	} {
		res := Validate(tc.age, tc.height, tc.weight)
		s.True(res.IsValid, "age=%d height=%v weight=%v", tc.age, tc.height, tc.weight)
		s.Empty(res.Message)
		s.NoError(res.Err())
	}
}

func (s *ValidateSuite) TestAge() {
	for _, age := range []int{0, -1, 121, 500} {
		res := Validate(age, 175, 70)
		s.False(res.IsValid, "age=%d", age)
		s.Equal(MsgInvalidAge, res.Message)
		s.Equal(models.FieldAge, res.Field)
	}
}

func (s *ValidateSuite) TestHeight() {
	for _, h := range []float64{0, 49.9, 250.1, -175} {
		res := Validate(30, h, 70)
		s.False(res.IsValid, "height=%v", h)
		s.Equal(MsgInvalidHeight, res.Message)
		s.Equal(models.FieldHeight, res.Field)
	}
}

func (s *ValidateSuite) TestWeight() {
	for _, w := range []float64{0, 19.99, 300.01} {
		res := Validate(30, 175, w)
		s.False(res.IsValid, "weight=%v", w)
		s.Equal(MsgInvalidWeight, res.Message)
		s.Equal(models.FieldWeight, res.Field)
	}
}

func (s *ValidateSuite) TestRuleOrder() {
	s.Run("age before height and weight", func() {
		s.Equal(MsgInvalidAge, Validate(0, 0, 0).Message)
	})
	s.Run("height before weight", func() {
		s.Equal(MsgInvalidHeight, Validate(30, 10, 1000).Message)
	})
}

func (s *ValidateSuite) TestErrCarriesField() {
	err := Validate(30, 175, 0).Err()
	s.Require().Error(err)

	var inv *models.InvalidInputError
	s.Require().ErrorAs(err, &inv)
	s.Equal(models.FieldWeight, inv.Field)
	s.Equal(MsgInvalidWeight, inv.Message)
}

type CalculateSuite struct {
	suite.Suite
}

func TestCalculateSuite(t *testing.T) {
	suite.Run(t, new(CalculateSuite))
}

// Rounding is half-up (ties toward +Inf); see utils.RoundHalfUp.
func (s *CalculateSuite) TestKnownValues() {
	// 88.362 + 937.79 + 839.825 - 170.31 = 1695.667
	s.Equal(1696, CalculateBMR(models.GenderMale, 30, 175, 70))
	// 447.593 + 554.82 + 511.17 - 129.9 = 1383.683
	s.Equal(1384, CalculateBMR(models.GenderFemale, 30, 165, 60))
}

// 447.593 + 564.067 + 402.74 - 129.9 sums to exactly 1284.5 in float64 when
// each product is rounded before the additions.
func (s *CalculateSuite) TestExactTieRoundsUp() {
	s.Equal(1285, CalculateBMR(models.GenderFemale, 30, 130, 61))
}

func (s *CalculateSuite) TestIdempotent() {
	first := CalculateBMR(models.GenderMale, 45, 182.5, 88.2)
	s.Equal(first, CalculateBMR(models.GenderMale, 45, 182.5, 88.2))
}

func (s *CalculateSuite) TestNonMaleUsesFemaleFormula() {
	want := CalculateBMR(models.GenderFemale, 30, 165, 60)
	for _, g := range []models.Gender{"", "other", "f", "unknown"} {
		s.Equal(want, CalculateBMR(g, 30, 165, 60), "gender=%q", g)
	}
}

func (s *CalculateSuite) TestLowEndOfDomain() {
	// 88.362 + 267.94 + 239.95 - 681.24 = -84.988
	s.Equal(-85, CalculateBMR(models.GenderMale, 120, 50, 20))
}

type PerformCalculationSuite struct {
	suite.Suite
}

func TestPerformCalculationSuite(t *testing.T) {
	suite.Run(t, new(PerformCalculationSuite))
}

func (s *PerformCalculationSuite) TestSuccess() {
	res := PerformCalculation("male", "30", "175", "70")
	s.True(res.OK)
	s.Equal(1696, res.BMR)
	s.Empty(res.Message)

	res = PerformCalculation("female", "30", "165", "60")
	s.True(res.OK)
	s.Equal(1384, res.BMR)
}

func (s *PerformCalculationSuite) TestGenderIsNormalised() {
	s.Equal(1696, PerformCalculation(" Male ", "30", "175", "70").BMR)
	s.Equal(1384, PerformCalculation("", "30", "165", "60").BMR)
}

func (s *PerformCalculationSuite) TestUnparseableTreatedAsMissing() {
	res := PerformCalculation("male", "abc", "175", "70")
	s.False(res.OK)
	s.Equal(MsgInvalidAge, res.Message)
	s.Equal(models.FieldAge, res.Field)
	s.Zero(res.BMR)

	res = PerformCalculation("male", "30", "NaN", "70")
	s.Equal(MsgInvalidHeight, res.Message)

	res = PerformCalculation("male", "30", "175", "")
	s.Equal(MsgInvalidWeight, res.Message)
}

func (s *PerformCalculationSuite) TestDecimalAgeTruncated() {
	s.Equal(
		PerformCalculation("male", "30", "175", "70").BMR,
		PerformCalculation("male", "30.9", "175", "70").BMR,
	)
	s.Equal(MsgInvalidAge, PerformCalculation("male", "0.5", "175", "70").Message)
}
