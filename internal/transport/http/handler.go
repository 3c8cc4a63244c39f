package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"scoring-gateway/internal/method"
	"scoring-gateway/pkg/platform/httputil"
	"scoring-gateway/pkg/requestcontext"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler delegates request bodies to the dispatcher without embedding
// business logic, so transport concerns remain isolated.
type Handler struct {
	dispatcher *method.Dispatcher
	logger     *slog.Logger
	health     HealthChecker
}

// NewHandler constructs the transport handler. health may be nil.
func NewHandler(dispatcher *method.Dispatcher, logger *slog.Logger, health HealthChecker) *Handler {
	return &Handler{dispatcher: dispatcher, logger: logger, health: health}
}

// HandleMethod handles POST /method requests.
func (h *Handler) HandleMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var body map[string]any
	dec := json.NewDecoder(r.Body)
	// Preserve number literals so the validators can tell ints from floats.
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		h.logger.InfoContext(ctx, "malformed request body",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteFailure(w, http.StatusBadRequest, "")
		return
	}

	res, err := h.dispatcher.Handle(ctx, body)
	if err != nil {
		h.logger.ErrorContext(ctx, "dispatch failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteFailure(w, http.StatusInternalServerError, "")
		return
	}

	h.logger.InfoContext(ctx, "request handled",
		"request_id", requestID,
		"code", res.Code,
		"has", res.Diagnostics.Has,
		"nclients", res.Diagnostics.NClients,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if res.Code != http.StatusOK {
		message, _ := res.Payload.(string)
		httputil.WriteFailure(w, res.Code, message)
		return
	}
	httputil.WriteResponse(w, res.Payload)
}

// HandleHealth handles GET /health requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Health(r.Context()); err != nil {
			httputil.WriteFailure(w, http.StatusInternalServerError, "store unreachable")
			return
		}
	}
	httputil.WriteResponse(w, map[string]string{"status": "ok"})
}
