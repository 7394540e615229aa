package httpapi

import (
	"net/http"
)

func (h *Handler) GetCurrentPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentPeriod")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, periodToDTO(h.periodService.Current(ctx)))
}

func (h *Handler) GetMyPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyPicks")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.pickService.GetCurrentPicks(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get current picks failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentPicksDTO{
		Period: periodToDTO(current.Period),
		Games:  gamesToDTO(current.Games),
		Picks:  picksToDTO(current.Picks),
	})
}

func (h *Handler) SubmitPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPicks")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitPicksRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.pickService.SubmitPicks(ctx, principal.UserID, picksFromDTO(req.Picks))
	if err != nil {
		h.logger.WarnContext(ctx, "submit picks failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, picksToDTO(saved))
}

func (h *Handler) GetWeekBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeekBoard")
	defer span.End()

	board, err := h.boardService.GetWeekBoard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get week board failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(board))
}
