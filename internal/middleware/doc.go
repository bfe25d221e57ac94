// Package middleware provides HTTP middleware for the phonebook API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: structured access log, including POST bodies
//   - Recovery: turns panics into {"error": "internal server error"}
//   - CORS: cross-origin headers and preflight handling
//   - RateLimit: per-client token buckets, 429 once exhausted (optional)
//   - Compress: gzip for clients that accept it
//   - Metrics: request counters and latency histograms (VictoriaMetrics)
//
// # Ordering
//
// Metrics reads r.Pattern after the ServeMux has matched, so it must be the
// last middleware in the chain. RateLimit, when enabled, goes after CORS so
// that rejections still carry the CORS headers:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	    middleware.RateLimit(limiter),
//	    middleware.Compress,
//	    middleware.Metrics(set),
//	)
//
// # Context Values
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
