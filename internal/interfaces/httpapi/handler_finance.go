package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/usecase"
)

func (h *Handler) ListFinances(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.ListFinances")
	defer span.End()

	finances, err := h.financeService.ListFinances(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list finances failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamFinanceDTO, 0, len(finances))
	for _, f := range finances {
		out = append(out, teamFinanceToDTO(f))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetFinance(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.GetFinance")
	defer span.End()

	team := strings.TrimSpace(r.PathValue("team"))
	f, err := h.financeService.GetFinance(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "get finance failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamFinanceToDTO(f))
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.ListTransactions")
	defer span.End()

	transactions, err := h.financeService.ListTransactions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list transactions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transactionsToDTOs(transactions))
}

func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.AddTransaction")
	defer span.End()

	var req transactionRequest
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

	var date time.Time
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		date = parsed
	}

	created, err := h.financeService.AddTransaction(ctx, finance.Transaction{
		Team:   req.Team,
		Type:   req.Type,
		Amount: req.Amount,
		Date:   date,
		Info:   req.Info,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add transaction failed", "team", req.Team, "type", req.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, transactionToDTO(created))
}
