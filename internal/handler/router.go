package handler

import (
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/forgo/phonebook/internal/middleware"
)

// RouterConfig holds what NewRouter needs to assemble the API
type RouterConfig struct {
	PersonService  PersonService
	Metrics        *metrics.Set
	AllowedOrigins []string
	// RateLimiter is optional; nil disables limiting
	RateLimiter *middleware.RateLimiter
}

// NewRouter registers every route and wraps the mux in the global
// middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	set := cfg.Metrics
	if set == nil {
		set = metrics.NewSet()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /metrics", middleware.MetricsHandler(set))

	NewPersonHandler(cfg.PersonService).RegisterRoutes(mux)
	NewInfoHandler(cfg.PersonService).RegisterRoutes(mux)

	chain := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.AllowedOrigins),
	}
	if cfg.RateLimiter != nil {
		chain = append(chain, middleware.RateLimit(cfg.RateLimiter))
	}
	// Metrics must stay innermost to see the matched pattern
	chain = append(chain, middleware.Compress, middleware.Metrics(set))

	return middleware.Chain(mux, chain...)
}
