package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/totallife/clinical-api/internal/middleware"
	"github.com/totallife/clinical-api/pkg/metrics"
)

// Handler is implemented by every route group
type Handler interface {
	RegisterRoutes(gin.IRouter)
}

type Router struct {
	engine       *gin.Engine
	clinicianH   Handler
	patientH     Handler
	appointmentH Handler
	healthH      Handler
	metricsH     Handler
	config       RouterConfig
}

type RouterConfig struct {
	RateLimitEnabled bool
	RateLimit        middleware.RateLimiterConfig
	CORSConfig       middleware.CORSConfig
	RequestTimeout   time.Duration
	MaxBodyBytes     int64
	Metrics          *metrics.Metrics
}

// Handlers groups the route handlers mounted by the router
type Handlers struct {
	Clinician   Handler
	Patient     Handler
	Appointment Handler
	Health      Handler
	Metrics     Handler
}

func NewRouter(h Handlers, config RouterConfig) *Router {
	engine := gin.New() // Use New() instead of Default() for more control

	r := &Router{
		engine:       engine,
		clinicianH:   h.Clinician,
		patientH:     h.Patient,
		appointmentH: h.Appointment,
		healthH:      h.Health,
		metricsH:     h.Metrics,
		config:       config,
	}

	// Add core middlewares
	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(config.Metrics),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.CORS(config.CORSConfig),
		middleware.ErrorHandler(),
	)

	return r
}

// Setup mounts every route. Ops endpoints sit outside the rate limit and
// request limits.
func (r *Router) Setup() *gin.Engine {
	if r.healthH != nil {
		r.healthH.RegisterRoutes(r.engine)
	}
	if r.metricsH != nil {
		r.metricsH.RegisterRoutes(r.engine)
	}

	api := r.engine.Group("")

	sizeLimit := middleware.DefaultSizeLimitConfig()
	if r.config.MaxBodyBytes > 0 {
		sizeLimit.MaxBodySize = r.config.MaxBodyBytes
	}
	api.Use(
		middleware.Timeout(middleware.TimeoutConfig{Duration: r.config.RequestTimeout}),
		middleware.SizeLimit(sizeLimit),
	)

	if r.config.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(r.config.RateLimit)
		api.Use(rateLimiter.RateLimit())
	}

	r.clinicianH.RegisterRoutes(api)
	r.patientH.RegisterRoutes(api)
	r.appointmentH.RegisterRoutes(api)

	return r.engine
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
