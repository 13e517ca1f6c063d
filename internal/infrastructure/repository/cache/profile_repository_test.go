package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/batting-insights/internal/domain/profile"
	basecache "github.com/riskibarqy/batting-insights/internal/platform/cache"
)

type countingProfiles struct {
	calls    int
	profiles []profile.Profile
	err      error
}

func (c *countingProfiles) ListProfiles(context.Context) ([]profile.Profile, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.profiles, nil
}

func TestProfileRepository_CachesList(t *testing.T) {
	next := &countingProfiles{profiles: profile.BuiltinProfiles()}
	repo := NewProfileRepository(next, basecache.NewStore[[]profile.Profile](time.Minute))

	for i := 0; i < 3; i++ {
		items, err := repo.ListProfiles(t.Context())
		if err != nil {
			t.Fatalf("list profiles: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 profiles, got %d", len(items))
		}
		items[0].Team = "mutated"
	}

	if next.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", next.calls)
	}

	items, _ := repo.ListProfiles(t.Context())
	if items[0].Team != "Los Angeles Angels" {
		t.Fatalf("caller mutation leaked into cache: %q", items[0].Team)
	}

	repo.Invalidate(t.Context())
	if _, err := repo.ListProfiles(t.Context()); err != nil {
		t.Fatalf("list after invalidate: %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("expected reload after invalidate, got %d calls", next.calls)
	}
}

func TestProfileRepository_DoesNotCacheErrors(t *testing.T) {
	boom := errors.New("profiles down")
	next := &countingProfiles{err: boom}
	repo := NewProfileRepository(next, basecache.NewStore[[]profile.Profile](time.Minute))

	if _, err := repo.ListProfiles(t.Context()); !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if _, err := repo.ListProfiles(t.Context()); !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", next.calls)
	}
}
