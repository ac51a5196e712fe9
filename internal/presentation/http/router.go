package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewEngine builds a gin engine with recovery plus the given middleware, and
// exposes the Prometheus scrape endpoint.
func NewEngine(env string, mw ...gin.HandlerFunc) *gin.Engine {
	if env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw...)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
