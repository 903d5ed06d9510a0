// SPDX-License-Identifier: MIT

package inference

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bayesnet/factor"
)

// Request is one entry of a QueryBatch.
type Request struct {
	Variables []string
	Evidence  map[string]int
	Options   []QueryOption
}

// Result pairs a posterior with the error of its request.
type Result struct {
	Factor *factor.Factor
	Err    error
}

// QueryBatch runs reqs concurrently, at most limit at a time (limit <= 0
// means unbounded). Results are positional. A failing request does not stop
// the others; the returned error is non-nil only when ctx is cancelled, in
// which case requests not yet started report ctx.Err().
func (ve *VariableElimination) QueryBatch(ctx context.Context, reqs []Request, limit int) ([]Result, error) {
	out := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range reqs {
		req := reqs[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return err
			}
			out[i].Factor, out[i].Err = ve.Query(req.Variables, req.Evidence, req.Options...)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, nil
}
