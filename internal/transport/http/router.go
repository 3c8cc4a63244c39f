// Package httptransport is the thin HTTP layer around the dispatcher. It
// owns request framing, JSON decoding, the response envelope, and the
// transport-only statuses (400, 404, 500); every business outcome comes from
// the dispatcher as a (payload, code) pair.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scoring-gateway/pkg/platform/httputil"
)

// NewRouter wires all endpoints. POST /method is the single business entry
// point; health and metrics are operational.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestTime)
	r.Use(Recover)

	r.Post("/method", h.HandleMethod)
	r.Get("/health", h.HandleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteFailure(w, http.StatusNotFound, "")
	})

	return r
}
