// Package metrics holds the service's prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP traffic
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "innermost_http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "innermost_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Landing page engagement
	ProfileActivations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "innermost_profile_activations_total",
		Help: "Total number of profile card activations",
	}, []string{"profile_id"})

	MenuToggles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "innermost_mobile_menu_toggles_total",
		Help: "Total number of page renders with the mobile menu opened",
	})

	// Rendering
	RenderCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "innermost_render_cache_lookups_total",
		Help: "Rendered page cache lookups by result",
	}, []string{"result"})

	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "innermost_build_info",
		Help: "Build information; the value is always 1",
	}, []string{"version", "commit"})
)

// Middleware records request count and latency keyed by the matched chi route
// pattern, so path parameters do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
