package bootstrap

import (
	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/observatory/internal/api/http"
	"github.com/GoSim-25-26J-441/observatory/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/observatory/internal/metrics"
	topohttp "github.com/GoSim-25-26J-441/observatory/internal/topology/http"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	Topology *service.TopologyService
	Logger   *log.Logger
	Metrics  *metrics.Registry

	CORSAllowOrigins []string
	RateLimitRPS     float64
	RateLimitBurst   int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(middleware.Metrics(dep.Metrics))
	r.Use(cors.New(corsConfig(dep.CORSAllowOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Topology)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst, dep.Metrics))

	topohttp.New(dep.Topology).Register(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "OPTIONS"}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
