package method

import (
	"context"
	"net/http"
	"time"

	"scoring-gateway/internal/request"
	"scoring-gateway/internal/scoring"
	"scoring-gateway/pkg/requestcontext"
)

// handleScore populates the score schema from the envelope arguments,
// applies the pair-presence rule and computes the score. Admin callers get a
// fixed score without a store round-trip.
func (d *Dispatcher) handleScore(ctx context.Context, env *request.MethodRequest) (Result, error) {
	req := request.NewOnlineScoreRequest(requestcontext.Now(ctx))
	if err := req.Populate(env.Arguments()); err != nil {
		return d.reject(ctx, err, Diagnostics{}), nil
	}

	diag := Diagnostics{Has: req.PresentFields()}

	if err := req.ValidatePairs(); err != nil {
		return d.reject(ctx, err, diag), nil
	}

	if env.IsAdmin() {
		return Result{
			Payload:     map[string]any{"score": adminScore},
			Code:        http.StatusOK,
			Diagnostics: diag,
		}, nil
	}

	start := time.Now()
	score := scoring.GetScore(ctx, d.store, scoring.Person{
		FirstName: req.FirstName(),
		LastName:  req.LastName(),
		Email:     req.Email(),
		Phone:     req.Phone(),
		Birthday:  req.Birthday(),
		Gender:    req.Gender(),
	})
	d.metrics.ObserveLookup("score", time.Since(start))

	return Result{
		Payload:     map[string]any{"score": score},
		Code:        http.StatusOK,
		Diagnostics: diag,
	}, nil
}
