// services/calculator_service.go
package services

import (
	"log/slog"

	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/models"
)

// CalculatorService wraps PerformCalculation with logging and metrics for
// the HTTP and websocket handlers. It holds no per-calculation state.
type CalculatorService struct {
	logger  *slog.Logger
	metrics *Metrics
}

func NewCalculatorService(logger *slog.Logger, metrics *Metrics) *CalculatorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalculatorService{logger: logger, metrics: metrics}
}

func (s *CalculatorService) Calculate(req models.CalculationRequest) models.CalculationResult {
	res := PerformCalculation(req.Gender, req.Age.String(), req.Height.String(), req.Weight.String())
	if s.metrics != nil {
		s.metrics.ObserveResult(res.OK, res.BMR, res.Field)
	}
	if !res.OK {
		s.logger.Debug("rejected bmr input", "field", res.Field, "message", res.Message)
		return res
	}
	s.logger.Info("calculated bmr", "gender", models.ParseGender(req.Gender), "bmr", res.BMR)
	return res
}

// Validate only checks the raw values; it does not count as a calculation.
func (s *CalculatorService) Validate(req models.CalculationRequest) models.ValidationResult {
	m := ParseMeasurement(req.Gender, req.Age.String(), req.Height.String(), req.Weight.String())
	return Validate(m.Age, m.Height, m.Weight)
}
