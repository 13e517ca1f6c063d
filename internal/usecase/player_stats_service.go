package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	"github.com/riskibarqy/batting-insights/internal/domain/playerstats"
	"github.com/riskibarqy/batting-insights/internal/domain/profile"
	"github.com/riskibarqy/batting-insights/internal/platform/logging"
)

// RandFactory hands out a fresh projection source for each aggregation pass.
type RandFactory func() playerstats.Source

// NewRandFactory returns a factory seeded with seed, or with runtime entropy when seed is nil.
func NewRandFactory(seed *uint64) RandFactory {
	if seed == nil {
		return func() playerstats.Source {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}

	fixed := *seed
	return func() playerstats.Source {
		return rand.New(rand.NewPCG(fixed, fixed))
	}
}

type ListPlayersInput struct {
	Name  string
	Limit int
}

// PlayerSeasons is the chart feed for one player.
type PlayerSeasons struct {
	ID         int
	Name       string
	Historical []playerstats.SeasonStat
	Predicted  []playerstats.SeasonStat
}

type PlayerStatsService struct {
	hits     battedball.Repository
	profiles profile.Repository
	defaults profile.Defaults
	newRand  RandFactory
	logger   *logging.Logger
}

func NewPlayerStatsService(
	hits battedball.Repository,
	profiles profile.Repository,
	defaults profile.Defaults,
	newRand RandFactory,
	logger *logging.Logger,
) *PlayerStatsService {
	if newRand == nil {
		newRand = NewRandFactory(nil)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerStatsService{
		hits:     hits,
		profiles: profiles,
		defaults: defaults,
		newRand:  newRand,
		logger:   logger,
	}
}

// ListPlayers aggregates every player and then applies the optional name filter and limit.
// Ids come from the unfiltered order, so a player keeps the same id whatever the filter.
func (s *PlayerStatsService) ListPlayers(ctx context.Context, input ListPlayersInput) ([]playerstats.Bundle, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.ListPlayers")
	defer span.End()

	if input.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	bundles, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(strings.TrimSpace(input.Name))
	out := make([]playerstats.Bundle, 0, len(bundles))
	for _, b := range bundles {
		if name != "" && !strings.Contains(strings.ToLower(b.Name), name) {
			continue
		}
		out = append(out, b)
		if input.Limit > 0 && len(out) == input.Limit {
			break
		}
	}

	return out, nil
}

func (s *PlayerStatsService) GetPlayer(ctx context.Context, id int) (playerstats.Bundle, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetPlayer")
	defer span.End()

	if id < 1 {
		return playerstats.Bundle{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	bundles, err := s.aggregate(ctx)
	if err != nil {
		return playerstats.Bundle{}, err
	}
	if id > len(bundles) {
		return playerstats.Bundle{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return bundles[id-1], nil
}

func (s *PlayerStatsService) ListSeasons(ctx context.Context, id int) (PlayerSeasons, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.ListSeasons")
	defer span.End()

	bundle, err := s.GetPlayer(ctx, id)
	if err != nil {
		return PlayerSeasons{}, err
	}

	return PlayerSeasons{
		ID:         bundle.ID,
		Name:       bundle.Name,
		Historical: bundle.Historical,
		Predicted:  bundle.Predicted,
	}, nil
}

func (s *PlayerStatsService) aggregate(ctx context.Context) ([]playerstats.Bundle, error) {
	hits, err := s.hits.ListHits(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load batted balls failed", "class", failureClass(err), "error", err)
		return nil, classifySourceError("list hits", err)
	}

	var profiles []profile.Profile
	if s.profiles != nil {
		profiles, err = s.profiles.ListProfiles(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "load player profiles failed", "error", err)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%w: list profiles: %w", ErrDependencyUnavailable, err)
		}
	}

	directory := profile.NewDirectory(profiles, s.defaults)
	aggregator := playerstats.Aggregator{
		Directory: directory,
		Rand:      s.newRand(),
	}
	bundles, err := aggregator.Aggregate(hits)
	if err != nil {
		s.logger.ErrorContext(ctx, "aggregate player stats failed", "class", failureClass(err), "hits", len(hits), "error", err)
		return nil, fmt.Errorf("aggregate player stats: %w", err)
	}

	s.logger.DebugContext(ctx, "aggregated player stats", "hits", len(hits), "players", len(bundles), "profiles", directory.Len())
	return bundles, nil
}

func classifySourceError(op string, err error) error {
	if errors.Is(err, battedball.ErrSourceUnavailable) {
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func failureClass(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, battedball.ErrSourceUnavailable):
		return "source_unavailable"
	case errors.Is(err, battedball.ErrMalformedRecord):
		return "malformed_record"
	case errors.Is(err, playerstats.ErrEmptyHistory):
		return "empty_history"
	default:
		return "internal"
	}
}
