package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/fifahub/liga-tracker/internal/domain/player"
	"github.com/fifahub/liga-tracker/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(players))
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	team := strings.TrimSpace(r.PathValue("team"))
	players, err := h.playerService.ListRoster(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "list roster failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(players))
}

func (h *Handler) BuyPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.BuyPlayer")
	defer span.End()

	var req buyPlayerRequest
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

	bought, err := h.playerService.BuyPlayer(ctx, player.Player{
		Name:     req.Name,
		Team:     req.Team,
		Position: req.Position,
		Value:    req.Value,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "buy player failed", "name", req.Name, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidateStats(ctx)

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(bought))
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.SellPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sold, err := h.playerService.SellPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "sell player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidateStats(ctx)

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(sold))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerRequest
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

	if err := h.playerService.UpdatePlayer(ctx, player.Player{
		ID:       playerID,
		Name:     req.Name,
		Team:     req.Team,
		Position: req.Position,
		Value:    req.Value,
	}); err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidateStats(ctx)

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"updatedPlayerId": playerID})
}
