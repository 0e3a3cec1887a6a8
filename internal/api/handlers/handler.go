package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fct/internal/api/middleware"
	"fct/internal/api/responder"
	"fct/internal/config"
)

const (
	HealthRoute  = "/health"
	MetricsRoute = "/metrics"
)

// RouteRegistrar подключает маршруты сервиса, использующего слой ошибок
type RouteRegistrar func(r gin.IRouter)

type Handler struct {
	responder   *responder.Responder
	corsOrigins []string
	registrars  []RouteRegistrar
}

func NewHandler(r *responder.Responder, envConfig *config.Config, registrars ...RouteRegistrar) *Handler {
	return &Handler{
		responder:   r,
		corsOrigins: envConfig.CORSOrigins,
		registrars:  registrars,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.LoggerMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.RecoveryMiddleware(h.responder),
		middleware.CORSMiddleware(h.corsOrigins),
		middleware.ErrorMiddleware(h.responder),
	)

	r.NoRoute(h.NoRoute)

	r.GET(HealthRoute, h.Health)
	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	for _, register := range h.registrars {
		register(r)
	}

	return r
}
