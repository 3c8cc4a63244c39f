package method

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"scoring-gateway/internal/request"
	"scoring-gateway/internal/scoring"
	"scoring-gateway/pkg/platform/slices"
)

// Upper bound on concurrent store lookups within one request.
const interestsLookupLimit = 8

// handleInterests populates the interests schema and assembles a mapping
// from each distinct requested client id to its interest list. Per-id
// lookups run concurrently; the first failure cancels the rest.
func (d *Dispatcher) handleInterests(ctx context.Context, env *request.MethodRequest) (Result, error) {
	req := request.NewClientsInterestsRequest()
	if err := req.Populate(env.Arguments()); err != nil {
		return d.reject(ctx, err, Diagnostics{}), nil
	}

	ids := req.ClientIDs()
	diag := Diagnostics{NClients: len(ids)}

	unique := slices.DedupeInts(ids)
	interests := make(map[int64][]string, len(unique))
	var mu sync.Mutex

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(interestsLookupLimit)
	for _, id := range unique {
		g.Go(func() error {
			list, err := scoring.GetInterests(gctx, d.store, id)
			if err != nil {
				return err
			}
			mu.Lock()
			interests[id] = list
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	d.metrics.ObserveLookup("interests", time.Since(start))

	return Result{
		Payload:     interests,
		Code:        http.StatusOK,
		Diagnostics: diag,
	}, nil
}
