package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/fifahub/liga-tracker/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.ListMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(matches))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) SettleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.SettleMatch")
	defer span.End()

	var req matchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := matchFromRequest(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	settled, err := h.settlementService.SettleMatch(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "settle match failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidateStats(ctx)

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(settled))
}

func (h *Handler) EditMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.EditMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := matchFromRequest(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	settled, err := h.settlementService.EditMatch(ctx, matchID, m)
	if err != nil {
		h.logger.WarnContext(ctx, "edit match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidateStats(ctx)

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(settled))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.settlementService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidateStats(ctx)

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deletedMatchId": matchID})
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
