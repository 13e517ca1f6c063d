package resilient

import (
	"context"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	"github.com/riskibarqy/batting-insights/internal/platform/logging"
	"github.com/riskibarqy/batting-insights/internal/platform/resilience"
)

// HitRepository guards a remote hit source with a circuit breaker.
// Malformed data and caller cancellation do not count as dependency failures.
type HitRepository struct {
	next    battedball.Repository
	breaker *resilience.CircuitBreaker
	enabled bool
	logger  *logging.Logger
}

func NewHitRepository(next battedball.Repository, cfg resilience.CircuitBreakerConfig, logger *logging.Logger) *HitRepository {
	if logger == nil {
		logger = logging.Default()
	}

	return &HitRepository{
		next:    next,
		breaker: resilience.NewCircuitBreaker(cfg),
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

func (r *HitRepository) ListHits(ctx context.Context) ([]battedball.Hit, error) {
	if !r.enabled {
		return r.next.ListHits(ctx)
	}

	before := r.State()
	var hits []battedball.Hit
	err := r.breaker.Execute(func() error {
		var err error
		hits, err = r.next.ListHits(ctx)
		return err
	}, isDependencyFailure)
	if after := r.State(); after != before {
		r.logger.WarnContext(ctx, "hit source circuit state changed", "from", string(before), "to", string(after), "error", err)
	}
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return nil, crerr.WithSecondaryError(crerr.Wrap(battedball.ErrSourceUnavailable, "hit source circuit open"), err)
	}
	if err != nil {
		return nil, err
	}

	return hits, nil
}

func (r *HitRepository) State() resilience.CircuitState {
	return r.breaker.State()
}

func isDependencyFailure(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, battedball.ErrMalformedRecord) {
		return false
	}
	return true
}
