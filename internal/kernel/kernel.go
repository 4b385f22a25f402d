// Package kernel assembles the HTTP handler: global middleware stack,
// operational endpoints, then the application routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/jackmarxreacher-creator/rby-sub000/pkg/cache"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/metrics"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/middleware"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/reqid"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/router"
)

// Build constructs the HTTP handler. registerRoutes is called last so
// application routes sit inside the full middleware stack.
func Build(registerRoutes func(*router.Router)) http.Handler {
	// Bridge the cache into the ORM without an import cycle.
	orm.CacheStore = &ormCache{}

	r := router.New()

	// Global middleware, outermost first:
	//  1. metrics      — measure total latency including everything below
	//  2. recovery     — catch panics before they kill the goroutine
	//  3. request ID   — present before anything logs
	//  4. logger       — per-request slog with request_id
	//  5. CORS
	//  6. rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Operational endpoints sit outside auth and rate accounting concerns.
	r.HandleFunc("/metrics", metrics.Handler())
	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	registerRoutes(r)

	return r.Handler()
}

// ormCache adapts pkg/cache to the orm.Cacher interface and feeds the
// hit/miss counters.
type ormCache struct{}

func (c *ormCache) Get(key string, dest interface{}) bool {
	if cache.Get(key, dest) {
		metrics.CacheHits.WithLabelValues(key).Inc()
		return true
	}
	metrics.CacheMisses.WithLabelValues(key).Inc()
	return false
}

func (c *ormCache) Set(key string, value interface{}, ttl time.Duration) error {
	return cache.Set(key, value, ttl)
}

func (c *ormCache) Forget(key string) error {
	return cache.Forget(key)
}
