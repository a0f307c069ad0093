package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/fifahub/liga-tracker/internal/usecase"
)

func (h *Handler) RunAudit(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.RunAudit")
	defer span.End()

	var req auditRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auditService.Run(ctx, usecase.AuditInput{
		MaxWorkers: req.MaxWorkers,
		Checks:     req.Checks,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "audit run failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
