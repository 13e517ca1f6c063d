package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/batting-insights/internal/config"
	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	"github.com/riskibarqy/batting-insights/internal/domain/profile"
	"github.com/riskibarqy/batting-insights/internal/infrastructure/profilefile"
	cacherepo "github.com/riskibarqy/batting-insights/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/batting-insights/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/batting-insights/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/batting-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/batting-insights/internal/infrastructure/repository/resilient"
	"github.com/riskibarqy/batting-insights/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/batting-insights/internal/platform/cache"
	"github.com/riskibarqy/batting-insights/internal/platform/logging"
	"github.com/riskibarqy/batting-insights/internal/platform/resilience"
	"github.com/riskibarqy/batting-insights/internal/usecase"
)

// NewHTTPServer wires the configured sources into the player stats API.
// The returned cleanup closes the database pool when one was opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var db *sqlx.DB
	cleanup := func() error { return nil }
	if cfg.NeedsDB() {
		opened, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		db = opened
		cleanup = db.Close
	}

	hitRepo, err := newHitRepository(cfg, db, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	profileRepo, defaults, err := newProfileRepository(ctx, cfg, db, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	svc := usecase.NewPlayerStatsService(
		hitRepo,
		profileRepo,
		defaults,
		usecase.NewRandFactory(cfg.PredictionSeed),
		logger,
	)

	handler := httpapi.NewHandler(svc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	logger.Info("player stats sources configured",
		"hits_source", cfg.HitsSource,
		"profiles_source", cfg.ProfilesSource,
		"profile_cache", cfg.ProfileCacheEnabled,
		"seeded", cfg.PredictionSeed != nil,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newHitRepository(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (battedball.Repository, error) {
	switch cfg.HitsSource {
	case config.HitsSourceCSV:
		return csvfile.NewHitRepository(cfg.HitsCSVPath), nil
	case config.HitsSourceMemory:
		return memory.NewHitRepository(memory.SeedHits()), nil
	case config.HitsSourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("hits source %q requires a database connection", cfg.HitsSource)
		}
		return resilient.NewHitRepository(postgres.NewHitRepository(db), dbCircuitConfig(cfg), logger), nil
	default:
		return nil, fmt.Errorf("unsupported hits source %q", cfg.HitsSource)
	}
}

// newProfileRepository also returns the defaults applied to players without a profile.
// Only the file source can override them.
func newProfileRepository(ctx context.Context, cfg config.Config, db *sqlx.DB, logger *logging.Logger) (profile.Repository, profile.Defaults, error) {
	defaults := profile.DefaultDefaults()

	var repo profile.Repository
	switch cfg.ProfilesSource {
	case config.ProfilesSourceBuiltin:
		repo = memory.NewProfileRepository(profile.BuiltinProfiles())
	case config.ProfilesSourceFile:
		fileRepo := profilefile.NewRepository(cfg.ProfilesPath)
		fileDefaults, err := fileRepo.Defaults()
		if err != nil {
			return nil, profile.Defaults{}, fmt.Errorf("load player profiles file: %w", err)
		}
		defaults = fileDefaults
		repo = fileRepo
	case config.ProfilesSourcePostgres:
		if db == nil {
			return nil, profile.Defaults{}, fmt.Errorf("profiles source %q requires a database connection", cfg.ProfilesSource)
		}
		repo = postgres.NewProfileRepository(db)
	default:
		return nil, profile.Defaults{}, fmt.Errorf("unsupported profiles source %q", cfg.ProfilesSource)
	}

	if cfg.ProfileCacheEnabled {
		cached := cacherepo.NewProfileRepository(repo, basecache.NewStore[[]profile.Profile](cfg.ProfileCacheTTL))
		watchProfileReload(ctx, cached, logger)
		repo = cached
	}

	return repo, defaults, nil
}

func dbCircuitConfig(cfg config.Config) resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
	}
}
