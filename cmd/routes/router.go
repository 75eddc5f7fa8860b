package routes

import (
	"fmt"

	"directory-service/cmd/controllers"
	"directory-service/internal/logger"
	"directory-service/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	UserService    = "user"
	CompanyService = "company"
)

// NewRouter builds the engine for service with the shared middleware, the
// health and metrics endpoints, and the service's own routes.
func NewRouter(service string, ctrl *controllers.Controller, m *metrics.Metrics, allowedOrigins []string) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinLogger(service), m.Middleware())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", ctrl.Health())
	router.GET("/metrics", gin.WrapH(m.Handler()))

	switch service {
	case UserService:
		UserRoute(router, ctrl)
	case CompanyService:
		CompanyRoute(router, ctrl)
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
	return router, nil
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type"}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}
