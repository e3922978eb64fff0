package experiment

import (
	"context"
	"fmt"
	"runtime"

	"github.com/san-kum/slopefield/internal/ode"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs one configuration from several initial values of y,
// giving a family of solution curves through the same field.
type Ensemble struct {
	registry *Registry
	cfg      Config
	logger   *zap.Logger
	limit    int
}

func NewEnsemble(r *Registry, cfg Config, logger *zap.Logger) *Ensemble {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ensemble{registry: r, cfg: cfg, logger: logger, limit: runtime.GOMAXPROCS(0)}
}

// SetLimit caps the number of members computed at once.
func (e *Ensemble) SetLimit(n int) {
	if n > 0 {
		e.limit = n
	}
}

// Run returns one result per y0, in the order given.
func (e *Ensemble) Run(ctx context.Context, y0s []float64) ([]*Result, error) {
	if len(y0s) == 0 {
		return nil, fmt.Errorf("%w: ensemble needs at least one initial value", ode.ErrInvalidArgument)
	}

	results := make([]*Result, len(y0s))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i, y0 := range y0s {
		i, y0 := i, y0
		cfg := e.cfg
		cfg.Initial = ode.InitialCondition{X0: e.cfg.Initial.X0, Y0: y0}

		g.Go(func() error {
			exp, err := Build(e.registry, cfg, e.logger.With(zap.Float64("y0", y0)))
			if err != nil {
				return err
			}
			res, err := exp.Run(gctx)
			if err != nil {
				return fmt.Errorf("y0=%g: %w", y0, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
