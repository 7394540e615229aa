package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/account/password"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/account/token"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pickem-league/internal/platform/cache"
	"github.com/riskibarqy/pickem-league/internal/platform/id"
	"github.com/riskibarqy/pickem-league/internal/platform/logging"
	"github.com/riskibarqy/pickem-league/internal/platform/resilience"
	"github.com/riskibarqy/pickem-league/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T, limiter *IPRateLimiter) testServer {
	t.Helper()

	now := time.Date(2024, 9, 18, 10, 0, 0, 0, time.UTC)
	users := memory.NewUserRepository()
	games := memory.NewGameRepository(
		game.Game{ID: "g1", Week: 3, Season: 2024, HomeTeam: "Bears", AwayTeam: "Packers"},
		game.Game{ID: "g2", Week: 3, Season: 2024, HomeTeam: "Lions", AwayTeam: "Vikings"},
	)
	scores := memory.NewScoreRepository()
	store := cache.NewStore(time.Minute)
	logger := logging.NewNop()

	tokens, err := token.NewProvider("router-test-secret", time.Hour)
	require.NoError(t, err)

	periods := usecase.NewPeriodService(period.DefaultResolver(), period.FixedClock(now))
	scoring := usecase.NewScoringService(users, games, scores, resilience.NewKeyedMutex(), store, nil, usecase.ScoringConfig{}, logger)
	handler := NewHandler(
		usecase.NewAuthService(users, password.NewHasher(4), tokens, id.NewSequenceGenerator("user"), []string{"commish"}, logger),
		periods,
		usecase.NewPickService(users, games, periods),
		usecase.NewBoardService(users, games, scores, periods),
		usecase.NewLeaderboardService(users, scores, periods, store),
		usecase.NewGameService(games, scoring, periods, id.NewSequenceGenerator("game"), period.WeekPolicy{}, logger),
		logger,
	)

	return testServer{
		handler: NewRouter(handler, tokens, logger, RouterConfig{
			SwaggerEnabled:     true,
			CORSAllowedOrigins: []string{"*"},
			MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("# metrics\n"))
			}),
			LoginLimiter: limiter,
		}),
	}
}

func (s testServer) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = sonic.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.RemoteAddr = "203.0.113.7:51000"
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func (s testServer) registerAndLogin(t *testing.T, username string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": "hunter22"}
	if rec := s.do(t, http.MethodPost, "/v1/auth/register", "", creds); rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status=%d body=%s", username, rec.Code, rec.Body.String())
	}

	rec := s.do(t, http.MethodPost, "/v1/auth/login", "", creds)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status=%d body=%s", username, rec.Code, rec.Body.String())
	}
	return decodeEnvelope[loginDTO](t, rec).Data.AccessToken
}

func TestRouter_RecordWinnerUpdatesLeaderboard(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	alice := srv.registerAndLogin(t, "alice")
	commish := srv.registerAndLogin(t, "commish")

	rec := srv.do(t, http.MethodPut, "/v1/picks", alice, submitPicksRequest{Picks: []pickDTO{
		{GameID: "g1", Label: "Bears"},
		{GameID: "g2", Label: "Lions"},
	}})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit picks: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = srv.do(t, http.MethodPut, "/v1/admin/games/g1/winner", commish, recordWinnerRequest{Winner: "Bears"})
	if rec.Code != http.StatusOK {
		t.Fatalf("record winner: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = srv.do(t, http.MethodGet, "/v1/leaderboard?season=2024", alice, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("leaderboard: status=%d body=%s", rec.Code, rec.Body.String())
	}
	standings := decodeEnvelope[[]standingDTO](t, rec).Data
	require.Len(t, standings, 2)
	require.Equal(t, "alice", standings[0].Username)
	require.Equal(t, 1, standings[0].TotalScore)
	require.Equal(t, 1, standings[0].Rank)
	require.Equal(t, 0, standings[1].TotalScore)
	require.Equal(t, 2, standings[1].Rank)

	rec = srv.do(t, http.MethodGet, "/v1/picks/all", alice, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("week board: status=%d body=%s", rec.Code, rec.Body.String())
	}
	board := decodeEnvelope[weekBoardDTO](t, rec).Data
	require.Equal(t, periodDTO{Week: 3, Season: 2024}, board.Period)
	require.Len(t, board.Entries, 2)
}

func TestRouter_RecordWinnerUnknownGame(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	commish := srv.registerAndLogin(t, "commish")

	rec := srv.do(t, http.MethodPut, "/v1/admin/games/missing/winner", commish, recordWinnerRequest{Winner: "Bears"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if got := decodeEnvelope[any](t, rec).Error; got == nil || got.Status != "NOT_FOUND" {
		t.Fatalf("unexpected error body: %+v", got)
	}
}

func TestRouter_AdminRoutesRequireAdmin(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	alice := srv.registerAndLogin(t, "alice")

	rec := srv.do(t, http.MethodPut, "/v1/admin/games/g1/winner", alice, recordWinnerRequest{Winner: "Bears"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	rec = srv.do(t, http.MethodPost, "/v1/admin/scores/recompute", "", recomputeRequest{})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRouter_AdminAddAndListGames(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	commish := srv.registerAndLogin(t, "commish")

	rec := srv.do(t, http.MethodPost, "/v1/admin/games", commish, addGameRequest{HomeTeam: "Jets", AwayTeam: "Bills"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add game: status=%d body=%s", rec.Code, rec.Body.String())
	}
	created := decodeEnvelope[gameDTO](t, rec).Data
	require.Equal(t, 3, created.Week)
	require.Equal(t, 2024, created.Season)

	rec = srv.do(t, http.MethodGet, "/v1/admin/games", commish, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeEnvelope[gameListDTO](t, rec).Data.Games, 3)

	rec = srv.do(t, http.MethodDelete, "/v1/admin/games/"+created.ID, commish, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/admin/games?week=x", commish, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RecomputeReportsResult(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	_ = srv.registerAndLogin(t, "alice")
	commish := srv.registerAndLogin(t, "commish")

	rec := srv.do(t, http.MethodPost, "/v1/admin/scores/recompute", commish, recomputeRequest{Week: 3, Season: 2024})
	if rec.Code != http.StatusOK {
		t.Fatalf("recompute: status=%d body=%s", rec.Code, rec.Body.String())
	}
	result := decodeEnvelope[recomputeDTO](t, rec).Data
	require.Equal(t, 2, result.UsersProcessed)
	require.Equal(t, periodDTO{Week: 3, Season: 2024}, result.Period)
}

func TestRouter_RejectsDuplicatePicks(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	alice := srv.registerAndLogin(t, "alice")

	rec := srv.do(t, http.MethodPut, "/v1/picks", alice, submitPicksRequest{Picks: []pickDTO{
		{GameID: "g1", Label: "Bears"},
		{GameID: "g1", Label: "Packers"},
	}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate picks, got %d", rec.Code)
	}
}

func TestRouter_DuplicateRegistrationConflicts(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	_ = srv.registerAndLogin(t, "alice")

	rec := srv.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{"username": "alice", "password": "another1"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRouter_LoginIsRateLimited(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, NewIPRateLimiter(0.001, 1))
	creds := map[string]string{"username": "nobody", "password": "whatever"}

	if rec := srv.do(t, http.MethodPost, "/v1/auth/login", "", creds); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected first attempt to reach login, got %d", rec.Code)
	}
	rec := srv.do(t, http.MethodPost, "/v1/auth/login", "", creds)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRouter_SystemRoutes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	for _, path := range []string{"/healthz", "/metrics", "/openapi.yaml", "/docs", "/v1/period"} {
		if rec := srv.do(t, http.MethodGet, path, "", nil); rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status=%d", path, rec.Code)
		}
	}
}

func TestValidateOpenAPI(t *testing.T) {
	t.Parallel()

	if err := ValidateOpenAPI(); err != nil {
		t.Fatalf("validate openapi: %v", err)
	}
}
