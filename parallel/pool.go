package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/crystio/resource"
)

// PoolName is the registry name of Pool.
const PoolName = "pool"

// Pool runs each chunk on its own goroutine. Every task additionally holds a
// worker slot of the resource controller, so concurrent reads share one
// process-wide bound.
type Pool struct {
	rc    *resource.Controller
	limit int
}

// NewPool creates a pool backend.
func NewPool(cfg Config) *Pool {
	rc := cfg.Controller
	if rc == nil {
		rc = resource.Shared()
	}
	// goroutines beyond the controller's worker slots would only wait
	limit := cfg.NumJobs
	if w := rc.Workers(); limit <= 0 || limit > w {
		limit = w
	}
	return &Pool{rc: rc, limit: limit}
}

func (p *Pool) Name() string { return PoolName }

func (p *Pool) Run(ctx context.Context, chunks [][]int, task Task) error {
	g, gctx := errgroup.WithContext(ctx)
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}
	for _, chunk := range chunks {
		g.Go(func() error {
			for _, i := range chunk {
				if err := p.rc.AcquireWorker(gctx); err != nil {
					return err
				}
				err := task(gctx, i)
				p.rc.ReleaseWorker()
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
