package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/usecase"
)

func TestMetrics_ObserveRecompute(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	result := usecase.RecomputeResult{Period: period.Period{Week: 3, Season: 2024}, UsersProcessed: 4, UnmatchedPicks: 2}

	m.ObserveRecompute(result, 20*time.Millisecond, nil)
	m.ObserveRecompute(usecase.RecomputeResult{}, time.Millisecond, errors.New("lock canceled"))

	if got := testutil.ToFloat64(m.recomputeRuns.WithLabelValues("success")); got != 1 {
		t.Fatalf("expected one successful run, got %v", got)
	}
	if got := testutil.ToFloat64(m.recomputeRuns.WithLabelValues("error")); got != 1 {
		t.Fatalf("expected one failed run, got %v", got)
	}
	if got := testutil.ToFloat64(m.usersScored); got != 4 {
		t.Fatalf("expected 4 users scored, got %v", got)
	}
	if got := testutil.ToFloat64(m.unmatchedPicks); got != 2 {
		t.Fatalf("expected 2 unmatched picks, got %v", got)
	}
}

func TestMetrics_HandlerExposesRegistry(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveHTTPRequest(http.MethodGet, "GET /v1/leaderboard", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `pickem_http_requests_total{method="GET",route="GET /v1/leaderboard",status="200"} 1`) {
		t.Fatalf("expected request counter in exposition, got:\n%s", body)
	}
}
