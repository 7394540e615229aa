package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/pickem-league/internal/config"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pickem-league/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "pickem-league-api",
		HTTPAddr:           ":0",
		StoreDriver:        config.StoreMemory,
		SeedDemoData:       true,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		SwaggerEnabled:     true,
		MetricsEnabled:     true,
		AuthTokenSecret:    "app-test-secret",
		AuthTokenTTL:       time.Hour,
		BcryptCost:         4,
		LoginRatePerSecond: 1,
		LoginRateBurst:     5,
		PeriodAnchor:       period.DefaultAnchor,
		PeriodAnchorWeek:   period.DefaultAnchorWeek,
		ScoringWorkers:     2,
	}
}

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	for _, path := range []string{"/healthz", "/metrics", "/openapi.yaml", "/v1/period"} {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status=%d", path, rec.Code)
		}
	}
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, _, err := NewHTTPServer(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestSeedDemoGames_OnlyWhenWeekIsEmpty(t *testing.T) {
	ctx := context.Background()
	games := memory.NewGameRepository()
	current := period.Period{Week: 3, Season: 2024}

	if err := seedDemoGames(ctx, games, current, logging.NewNop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	first, err := games.ListByPeriod(ctx, current)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) == 0 {
		t.Fatalf("expected demo games to be seeded")
	}

	if err := seedDemoGames(ctx, games, current, logging.NewNop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	second, err := games.ListByPeriod(ctx, current)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected reseed to be a no-op, got %d games after %d", len(second), len(first))
	}
}
