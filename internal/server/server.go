package server

import (
	"github.com/afsarahmad786/basicValidation/internal/config"
	"github.com/afsarahmad786/basicValidation/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the Gin router with the registration, health and metrics routes.
func NewRouter(cfg *config.Config, dispatcher *validation.Dispatcher) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxMultipartMemory()
	router.Use(gin.Recovery(), requestIDMiddleware(), accessLogMiddleware(), metricsMiddleware())

	handler := newHandler(dispatcher)

	router.GET(HealthEndpoint, handler.health)
	router.GET(MetricsPath, gin.WrapH(promhttp.Handler()))
	router.POST(RegisterPath, handler.register)

	return router
}
