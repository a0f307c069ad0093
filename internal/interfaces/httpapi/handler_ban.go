package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/fifahub/liga-tracker/internal/domain/ban"
	"github.com/fifahub/liga-tracker/internal/usecase"
)

func (h *Handler) ListBans(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.ListBans")
	defer span.End()

	bans, err := h.banService.ListBans(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list bans failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bansToDTOs(bans))
}

func (h *Handler) CreateBan(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.CreateBan")
	defer span.End()

	var req banRequest
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

	created, err := h.banService.CreateBan(ctx, ban.Ban{
		PlayerID:     req.PlayerID,
		Type:         req.Type,
		TotalMatches: req.TotalMatches,
		Reason:       req.Reason,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create ban failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, banToDTO(created))
}

func (h *Handler) UpdateBan(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.UpdateBan")
	defer span.End()

	banID, err := pathID(r, "banID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateBanRequest
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

	if err := h.banService.UpdateBan(ctx, ban.Ban{
		ID:            banID,
		PlayerID:      req.PlayerID,
		Team:          req.Team,
		Type:          req.Type,
		TotalMatches:  req.TotalMatches,
		MatchesServed: req.MatchesServed,
		Reason:        req.Reason,
	}); err != nil {
		h.logger.WarnContext(ctx, "update ban failed", "ban_id", banID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"updatedBanId": banID})
}

func (h *Handler) DeleteBan(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.DeleteBan")
	defer span.End()

	banID, err := pathID(r, "banID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.banService.DeleteBan(ctx, banID); err != nil {
		h.logger.WarnContext(ctx, "delete ban failed", "ban_id", banID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deletedBanId": banID})
}
