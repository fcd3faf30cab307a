package routes

import (
	"net/http"
	"time"

	"football-club/matchday/internal/api"
	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/jobs"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	UpSince           time.Time
	VoteRatePerSecond float64
	VoteRateBurst     int
	AllowedOrigins    []string
	// Gatherer backs /metrics; nil means the default Prometheus registry.
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(deps *api.Dependencies, jobsContainer *jobs.Jobs, tokens *auth.TokenService, opts Options) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"https://*", "http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.Repo.Audience, opts.UpSince))

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	handlers := api.NewHandlers(deps)
	jobsHandler := api.NewJobsHandler(jobsContainer)
	voteLimiter := middleware.NewRateLimiter(opts.VoteRatePerSecond, opts.VoteRateBurst)

	RegisterAPIRoutes(r, handlers, jobsHandler, tokens, voteLimiter)

	return r
}
