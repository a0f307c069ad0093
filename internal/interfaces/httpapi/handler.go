package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fifahub/liga-tracker/internal/platform/logging"
	"github.com/fifahub/liga-tracker/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	matchService      *usecase.MatchService
	settlementService *usecase.SettlementService
	playerService     *usecase.PlayerService
	banService        *usecase.BanService
	financeService    *usecase.FinanceService
	statsService      *usecase.StatsService
	auditService      *usecase.AuditService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	settlementService *usecase.SettlementService,
	playerService *usecase.PlayerService,
	banService *usecase.BanService,
	financeService *usecase.FinanceService,
	statsService *usecase.StatsService,
	auditService *usecase.AuditService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		matchService:      matchService,
		settlementService: settlementService,
		playerService:     playerService,
		banService:        banService,
		financeService:    financeService,
		statsService:      statsService,
		auditService:      auditService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := handlerSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// invalidateStats drops the cached dashboard aggregates after any write that
// changes them.
func (h *Handler) invalidateStats(ctx context.Context) {
	if h.statsService != nil {
		h.statsService.Invalidate(ctx)
	}
}
