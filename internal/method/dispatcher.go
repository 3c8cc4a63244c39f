// Package method implements the per-request dispatch state machine: parse
// the envelope, authenticate, validate, route to a handler, and normalize
// every outcome into a (payload, code) pair plus a diagnostics record.
package method

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"scoring-gateway/internal/auth"
	"scoring-gateway/internal/method/metrics"
	"scoring-gateway/internal/request"
	"scoring-gateway/internal/scoring"
	dErrors "scoring-gateway/pkg/domain-errors"
	"scoring-gateway/pkg/requestcontext"
)

// Routed method names.
const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

const adminScore = 42

// Diagnostics is the explicit record of request facts the transport logs.
// It replaces the historical write-through context map.
type Diagnostics struct {
	// Has lists the non-empty score fields in declaration order.
	Has []string
	// NClients counts the requested client ids, duplicates included.
	NClients int
}

// Result is the normalized outcome of one dispatch. On a non-OK code the
// payload is a short human-readable failure string.
type Result struct {
	Payload     any
	Code        int
	Diagnostics Diagnostics
}

// Dispatcher routes authenticated envelopes to the business handlers.
type Dispatcher struct {
	auth       *auth.Authenticator
	store      scoring.Store
	adminLogin string
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewDispatcher wires the dispatcher's collaborators. metrics may be nil.
func NewDispatcher(authenticator *auth.Authenticator, store scoring.Store, adminLogin string, logger *slog.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		auth:       authenticator,
		store:      store,
		adminLogin: adminLogin,
		logger:     logger,
		metrics:    m,
	}
}

// Handle runs one request through the state machine. A returned error means
// an internal failure the transport must report as a server error; every
// validation or auth outcome is expressed through the Result instead.
//
// Authentication runs before structural validation, so a request that is
// both malformed and unauthenticated is rejected as forbidden.
func (d *Dispatcher) Handle(ctx context.Context, body map[string]any) (Result, error) {
	start := time.Now()

	env := request.NewMethodRequest(d.adminLogin)
	popErr := env.Populate(body)

	res, err := d.dispatch(ctx, env, popErr)
	if err != nil {
		return Result{}, err
	}

	d.metrics.IncRequest(env.Method(), res.Code)
	d.metrics.ObserveHandle(env.Method(), time.Since(start))
	return res, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, env *request.MethodRequest, popErr error) (Result, error) {
	// A request presenting no credential at all is structurally incomplete,
	// not forbidden; the auth gate only judges supplied tokens.
	if !env.TokenSupplied() {
		return d.reject(ctx, env.ValidateRequired(), Diagnostics{}), nil
	}

	if !d.auth.Authenticate(ctx, env) {
		d.logger.InfoContext(ctx, "authentication failed",
			"request_id", requestcontext.RequestID(ctx),
			"login", env.Login(),
		)
		return Result{Payload: "Forbidden", Code: http.StatusForbidden}, nil
	}

	if popErr != nil {
		return d.reject(ctx, popErr, Diagnostics{}), nil
	}
	if err := env.ValidateRequired(); err != nil {
		return d.reject(ctx, err, Diagnostics{}), nil
	}

	switch env.Method() {
	case MethodOnlineScore:
		return d.handleScore(ctx, env)
	case MethodClientsInterests:
		return d.handleInterests(ctx, env)
	default:
		// Unrecognized methods fall through as an empty success. Documented
		// behavior, kept as-is.
		return Result{Payload: map[string]any{}, Code: http.StatusOK}, nil
	}
}

// reject turns a validation failure into an invalid-request (or forbidden)
// outcome and records it.
func (d *Dispatcher) reject(ctx context.Context, err error, diag Diagnostics) Result {
	code := dErrors.CodeOf(err)
	d.metrics.IncValidationFailure(string(code))
	d.logger.InfoContext(ctx, "request rejected",
		"request_id", requestcontext.RequestID(ctx),
		"class", string(code),
		"reason", err.Error(),
	)
	return Result{
		Payload:     err.Error(),
		Code:        dErrors.ToHTTPStatus(code),
		Diagnostics: diag,
	}
}
