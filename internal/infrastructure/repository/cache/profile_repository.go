package cache

import (
	"context"

	"github.com/riskibarqy/batting-insights/internal/domain/profile"
	basecache "github.com/riskibarqy/batting-insights/internal/platform/cache"
)

const profileListKey = "profile:list"

type ProfileRepository struct {
	next  profile.Repository
	cache *basecache.Store[[]profile.Profile]
}

func NewProfileRepository(next profile.Repository, cache *basecache.Store[[]profile.Profile]) *ProfileRepository {
	return &ProfileRepository{next: next, cache: cache}
}

func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]profile.Profile, error) {
	items, err := r.cache.GetOrLoad(ctx, profileListKey, func(ctx context.Context) ([]profile.Profile, error) {
		items, err := r.next.ListProfiles(ctx)
		if err != nil {
			return nil, err
		}
		return append([]profile.Profile(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]profile.Profile(nil), items...), nil
}

// Invalidate drops cached profiles so the next call reloads from the source.
func (r *ProfileRepository) Invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, "profile:")
}
