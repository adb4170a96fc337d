package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ravjot07/TxGraph/interfaces/http/rest/middleware"
	"github.com/ravjot07/TxGraph/pkg/observability"
)

// Router exposes the dashboard's ops surface: health and metrics. The
// dashboard UI itself is rendered elsewhere; nothing user-facing is
// served here.
type Router struct {
	logger  *zap.Logger
	metrics *observability.Collector
}

// NewRouter creates the ops router
func NewRouter(logger *zap.Logger, metrics *observability.Collector) *Router {
	return &Router{logger: logger, metrics: metrics}
}

// Setup configures and returns the handler
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(rt.logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		rt.metrics.Registry(),
		promhttp.HandlerOpts{},
	))

	return r
}
