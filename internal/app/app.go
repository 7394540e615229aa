package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/pickem-league/internal/config"
	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/account/password"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/account/token"
	cachedrepo "github.com/riskibarqy/pickem-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/pickem-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/pickem-league/internal/observability"
	"github.com/riskibarqy/pickem-league/internal/platform/cache"
	idgen "github.com/riskibarqy/pickem-league/internal/platform/id"
	"github.com/riskibarqy/pickem-league/internal/platform/logging"
	"github.com/riskibarqy/pickem-league/internal/platform/resilience"
	"github.com/riskibarqy/pickem-league/internal/usecase"
)

type repositories struct {
	users  user.Repository
	games  game.Repository
	scores score.Repository
	close  func() error
}

// NewHTTPServer wires the store, use cases and router. The returned cleanup
// releases the database handle and must run after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}
	if cfg.SwaggerEnabled {
		if err := httpapi.ValidateOpenAPI(); err != nil {
			return nil, nil, fmt.Errorf("validate openapi document: %w", err)
		}
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	resolver := cfg.Resolver()
	clock := period.SystemClock{}
	if cfg.SeedDemoData {
		if err := seedDemoGames(ctx, repos.games, resolver.Current(clock), logger); err != nil {
			_ = repos.close()
			return nil, nil, err
		}
	}

	tokens, err := token.NewProvider(cfg.AuthTokenSecret, cfg.AuthTokenTTL)
	if err != nil {
		_ = repos.close()
		return nil, nil, fmt.Errorf("build token provider: %w", err)
	}

	// Scoring reads games straight from the store. Everything else goes
	// through the cached repository so writes drop cached slates.
	var cacheStore *cache.Store
	cachedGames := repos.games
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
		cachedGames = cachedrepo.NewGameRepository(repos.games, cacheStore)
	}
	metrics := observability.NewMetrics()

	periodSvc := usecase.NewPeriodService(resolver, clock)
	scoringSvc := usecase.NewScoringService(
		repos.users,
		repos.games,
		repos.scores,
		resilience.NewKeyedMutex(),
		cacheStore,
		metrics,
		usecase.ScoringConfig{Workers: cfg.ScoringWorkers},
		logger.Named("scoring"),
	)
	authSvc := usecase.NewAuthService(
		repos.users,
		password.NewHasher(cfg.BcryptCost),
		tokens,
		idgen.NewUUIDGenerator(),
		cfg.AdminUsernames,
		logger.Named("auth"),
	)
	gameSvc := usecase.NewGameService(
		cachedGames,
		scoringSvc,
		periodSvc,
		idgen.NewUUIDGenerator(),
		cfg.WeekPolicy(),
		logger.Named("games"),
	)

	handler := httpapi.NewHandler(
		authSvc,
		periodSvc,
		usecase.NewPickService(repos.users, cachedGames, periodSvc),
		usecase.NewBoardService(repos.users, cachedGames, repos.scores, periodSvc),
		usecase.NewLeaderboardService(repos.users, repos.scores, periodSvc, cacheStore),
		gameSvc,
		logger,
	)

	routerCfg := httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		HTTPMetrics:        metrics,
		LoginLimiter:       httpapi.NewIPRateLimiter(cfg.LoginRatePerSecond, cfg.LoginRateBurst),
	}
	if cfg.MetricsEnabled {
		routerCfg.MetricsHandler = metrics.Handler()
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, tokens, logger, routerCfg),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("store ready", "driver", cfg.StoreDriver, "database", dbNameFromURL(cfg.DBURL))
		return repositories{
			users:  postgres.NewUserRepository(db),
			games:  postgres.NewGameRepository(db),
			scores: postgres.NewScoreRepository(db),
			close:  db.Close,
		}, nil
	default:
		logger.Info("store ready", "driver", config.StoreMemory)
		return repositories{
			users:  memory.NewUserRepository(),
			games:  memory.NewGameRepository(),
			scores: memory.NewScoreRepository(),
			close:  func() error { return nil },
		}, nil
	}
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres",
		normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// seedDemoGames fills the current week with a demo slate when it is empty.
func seedDemoGames(ctx context.Context, games game.Repository, current period.Period, logger *logging.Logger) error {
	existing, err := games.ListByPeriod(ctx, current)
	if err != nil {
		return fmt.Errorf("list games for demo seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeded := memory.SeedGames(current, time.Now().UTC())
	for _, g := range seeded {
		if err := games.Create(ctx, g); err != nil {
			return fmt.Errorf("seed demo game %s: %w", g.ID, err)
		}
	}

	logger.Info("demo games seeded", "week", current.Week, "season", current.Season, "games", len(seeded))
	return nil
}
