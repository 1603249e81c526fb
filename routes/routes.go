package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/config"
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/controllers"
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/middlewares"
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/services"
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps is everything the router needs. Registry may be nil when metrics
// are disabled.
type Deps struct {
	Config   config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

func SetupRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Logger))
	r.SetHTMLTemplate(tmpl)

	var metrics *services.Metrics
	if d.Registry != nil {
		metrics = services.NewMetrics(d.Registry)
		r.Use(middlewares.Metrics(metrics))
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	calc := services.NewCalculatorService(d.Logger, metrics)
	page := controllers.NewPageController(calc, d.Config.UI.NoticeDismiss)
	bmr := controllers.NewBMRController(calc)
	rt := controllers.NewRealtimeController(calc, d.Logger, d.Config.UI.WSPingInterval)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Form page
	r.GET("/", page.Show)
	r.POST("/", page.Submit)
	r.GET("/reset", page.Reset)

	api := r.Group("/api/v1")
	{
		api.POST("/bmr", bmr.Calculate)
		api.POST("/validate", bmr.Validate)
	}

	r.GET("/ws/calculate", rt.CalculateWS)

	return r, nil
}
