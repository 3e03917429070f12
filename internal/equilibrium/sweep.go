package equilibrium

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/cg-spread/internal/model"
)

// Sweep solves base once per pi, running up to workers solves at a time
// (workers <= 0 means unbounded). Results keep the order of pis. The first
// failure cancels the remaining solves. Sweeps never write reports.
func (s *Solver) Sweep(ctx context.Context, base model.Params, pis []float64, workers int) ([]model.Result, error) {
	results := make([]model.Result, len(pis))
	solver := s.quiet()

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, pi := range pis {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := solver.Solve(base.WithPi(pi))
			if err != nil {
				return fmt.Errorf("sweep pi=%g: %w", pi, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
