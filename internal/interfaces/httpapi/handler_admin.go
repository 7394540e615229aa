package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/pickem-league/internal/usecase"
)

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	week, err := queryInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, games, err := h.gameService.ListGames(ctx, week, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "week", week, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameListDTO{
		Period: periodToDTO(p),
		Games:  gamesToDTO(games),
	})
}

func (h *Handler) AddGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGame")
	defer span.End()

	var req addGameRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.gameService.AddGame(ctx, usecase.AddGameInput{
		HomeTeam: req.HomeTeam,
		AwayTeam: req.AwayTeam,
		Week:     req.Week,
		Season:   req.Season,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add game failed", "home_team", req.HomeTeam, "away_team", req.AwayTeam, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(created))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	if err := h.gameService.DeleteGame(ctx, gameID); err != nil {
		h.logger.WarnContext(ctx, "delete game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RecordWinner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordWinner")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req recordWinnerRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.gameService.RecordWinner(ctx, gameID, req.Winner); err != nil {
		h.logger.ErrorContext(ctx, "record winner failed", "game_id", gameID, "winner", req.Winner, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"game_id": gameID,
		"winner":  strings.TrimSpace(req.Winner),
	})
}

func (h *Handler) RecomputeScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeScores")
	defer span.End()

	var req recomputeRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.gameService.Recompute(ctx, req.Week, req.Season)
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute scores failed", "week", req.Week, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recomputeDTO{
		Period:         periodToDTO(result.Period),
		UsersProcessed: result.UsersProcessed,
		UnmatchedPicks: result.UnmatchedPicks,
	})
}
