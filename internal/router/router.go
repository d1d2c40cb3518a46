package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/doctor-channel/internal/config"
	"github.com/jwalitptl/doctor-channel/internal/handler/health"
	"github.com/jwalitptl/doctor-channel/internal/handler/prometheus"
	"github.com/jwalitptl/doctor-channel/internal/middleware"
)

// Handler is implemented by every resource handler. Gating is declared by the
// handler itself with the auth middleware it receives.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup, *middleware.AuthMiddleware)
}

type RouterConfig struct {
	BasePath       string
	Mode           string
	RequestTimeout time.Duration
	MaxBodyBytes   int64

	RateLimitEnabled bool
	RateLimit        rate.Limit
	RateBurst        int

	CORSConfig     middleware.CORSConfig
	MetricsEnabled bool
	MetricsPath    string
}

// ConfigFrom derives the router settings from the application config.
func ConfigFrom(cfg *config.Config) RouterConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		cors.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	if len(cfg.CORS.AllowedMethods) > 0 {
		cors.AllowMethods = cfg.CORS.AllowedMethods
	}
	if len(cfg.CORS.AllowedHeaders) > 0 {
		cors.AllowHeaders = cfg.CORS.AllowedHeaders
	}
	if cfg.CORS.MaxAge > 0 {
		cors.MaxAge = cfg.CORS.MaxAge
	}

	return RouterConfig{
		BasePath:         cfg.Server.BasePath,
		Mode:             cfg.Server.Mode,
		RequestTimeout:   cfg.Server.RequestTimeout,
		MaxBodyBytes:     cfg.Server.MaxBodyBytes,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:        cfg.RateLimit.Burst,
		CORSConfig:       cors,
		MetricsEnabled:   cfg.Monitoring.PrometheusEnabled,
		MetricsPath:      cfg.Monitoring.MetricsPath,
	}
}

type Router struct {
	engine   *gin.Engine
	config   RouterConfig
	auth     *middleware.AuthMiddleware
	health   *health.Handler
	metrics  *prometheus.Handler
	handlers []Handler
}

func NewRouter(
	config RouterConfig,
	logger zerolog.Logger,
	auth *middleware.AuthMiddleware,
	healthH *health.Handler,
	metrics *prometheus.Handler,
	handlers ...Handler,
) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}
	if config.BasePath == "" {
		config.BasePath = "/api"
	}

	engine := gin.New()
	r := &Router{
		engine:   engine,
		config:   config,
		auth:     auth,
		health:   healthH,
		metrics:  metrics,
		handlers: handlers,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(logger),
	)
	if metrics != nil {
		engine.Use(metrics.Middleware())
	}
	engine.Use(
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.CORS(config.CORSConfig),
	)
	if config.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(limiter.RateLimit())
	}
	engine.Use(
		middleware.SizeLimit(config.MaxBodyBytes),
		middleware.Timeout(config.RequestTimeout),
	)

	return r
}

// Setup registers every route. Health and metrics stay reachable without a token.
func (r *Router) Setup() *gin.Engine {
	if r.metrics != nil && r.config.MetricsEnabled {
		path := r.config.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, r.metrics.Handler())
	}

	api := r.engine.Group(r.config.BasePath)
	if r.health != nil {
		r.health.RegisterRoutes(api)
	}

	api.Use(r.auth.Authenticate())
	for _, h := range r.handlers {
		h.RegisterRoutes(api, r.auth)
	}
	return r.engine
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
