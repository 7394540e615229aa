package httpapi

import "net/http"

// documentedRoutes must stay in sync with openapi.yaml.
var documentedRoutes = []string{
	"GET /healthz",
	"POST /v1/auth/register",
	"POST /v1/auth/login",
	"GET /v1/period",
	"GET /v1/picks",
	"PUT /v1/picks",
	"GET /v1/picks/all",
	"GET /v1/leaderboard",
	"GET /v1/leaderboard/totals",
	"GET /v1/me/summary",
	"GET /v1/admin/games",
	"POST /v1/admin/games",
	"DELETE /v1/admin/games/{gameID}",
	"PUT /v1/admin/games/{gameID}/winner",
	"POST /v1/admin/scores/recompute",
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}
	if !cfg.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, limiter *IPRateLimiter) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.Handle("POST /v1/auth/login", RateLimit(limiter, http.HandlerFunc(handler.Login)))
	mux.HandleFunc("GET /v1/period", handler.GetCurrentPeriod)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/picks", RequireAuth(verifier, http.HandlerFunc(handler.GetMyPicks)))
	mux.Handle("PUT /v1/picks", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPicks)))
	mux.Handle("GET /v1/picks/all", RequireAuth(verifier, http.HandlerFunc(handler.GetWeekBoard)))
	mux.Handle("GET /v1/leaderboard", RequireAuth(verifier, http.HandlerFunc(handler.GetLeaderboard)))
	mux.Handle("GET /v1/leaderboard/totals", RequireAuth(verifier, http.HandlerFunc(handler.GetSeasonTotals)))
	mux.Handle("GET /v1/me/summary", RequireAuth(verifier, http.HandlerFunc(handler.GetMySeasonSummary)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/admin/games", RequireAdmin(verifier, http.HandlerFunc(handler.ListGames)))
	mux.Handle("POST /v1/admin/games", RequireAdmin(verifier, http.HandlerFunc(handler.AddGame)))
	mux.Handle("DELETE /v1/admin/games/{gameID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteGame)))
	mux.Handle("PUT /v1/admin/games/{gameID}/winner", RequireAdmin(verifier, http.HandlerFunc(handler.RecordWinner)))
	mux.Handle("POST /v1/admin/scores/recompute", RequireAdmin(verifier, http.HandlerFunc(handler.RecomputeScores)))
}
