package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
)

type HitRepository struct {
	mu   sync.RWMutex
	hits []battedball.Hit
}

func NewHitRepository(hits []battedball.Hit) *HitRepository {
	return &HitRepository{hits: append([]battedball.Hit(nil), hits...)}
}

func (r *HitRepository) ListHits(_ context.Context) ([]battedball.Hit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]battedball.Hit, 0, len(r.hits))
	out = append(out, r.hits...)
	return out, nil
}
