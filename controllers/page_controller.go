package controllers

import (
	"net/http"
	"time"

	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/models"
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/services"

	"github.com/gin-gonic/gin"
)

// PageController serves the HTML form. Submitted values are echoed back so
// the user only has to fix the field named in the notice.
type PageController struct {
	Calc          *services.CalculatorService
	NoticeDismiss time.Duration
}

func NewPageController(calc *services.CalculatorService, noticeDismiss time.Duration) *PageController {
	return &PageController{Calc: calc, NoticeDismiss: noticeDismiss}
}

type pageView struct {
	Gender        string
	Age           string
	Height        string
	Weight        string
	HasResult     bool
	BMR           int
	Message       string
	DismissMillis int64
}

func (pc *PageController) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", pageView{
		Gender:        string(models.GenderMale),
		DismissMillis: pc.NoticeDismiss.Milliseconds(),
	})
}

// Reset renders a blank form; there is no server-side state to clear.
func (pc *PageController) Reset(c *gin.Context) {
	pc.Show(c)
}

func (pc *PageController) Submit(c *gin.Context) {
	req := models.CalculationRequest{
		Gender: c.PostForm("gender"),
		Age:    models.FlexString(c.PostForm("age")),
		Height: models.FlexString(c.PostForm("height")),
		Weight: models.FlexString(c.PostForm("weight")),
	}
	view := pageView{
		Gender: string(models.ParseGender(req.Gender)),
		Age:    req.Age.String(),
		Height: req.Height.String(),
		Weight: req.Weight.String(),

		DismissMillis: pc.NoticeDismiss.Milliseconds(),
	}

	res := pc.Calc.Calculate(req)
	if !res.OK {
		view.Message = res.Message
		c.HTML(http.StatusUnprocessableEntity, "index.tmpl", view)
		return
	}

	view.HasResult = true
	view.BMR = res.BMR
	c.HTML(http.StatusOK, "index.tmpl", view)
}
