package controllers

import (
	"net/http"

	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/models"
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/services"

	"github.com/gin-gonic/gin"
)

type BMRController struct {
	Calc *services.CalculatorService
}

func NewBMRController(calc *services.CalculatorService) *BMRController {
	return &BMRController{Calc: calc}
}

// Calculate handles POST /api/v1/bmr.
func (bc *BMRController) Calculate(c *gin.Context) {
	var req models.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := bc.Calc.Calculate(req)
	if !res.OK {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": res.Message, "field": res.Field})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bmr": res.BMR, "unit": "kcal/day"})
}

// Validate handles POST /api/v1/validate. An invalid verdict is still a 200.
func (bc *BMRController) Validate(c *gin.Context) {
	var req models.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bc.Calc.Validate(req))
}
