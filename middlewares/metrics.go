package middlewares

import (
	"time"

	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Metrics times every request under its route template, so /api/v1/bmr and
// /api/v1/validate stay separate series whatever the query string.
// Websocket upgrades are skipped: their duration is the connection lifetime.
func Metrics(m *services.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if websocket.IsWebSocketUpgrade(c.Request) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, start)
	}
}
