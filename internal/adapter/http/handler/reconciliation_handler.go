package handler

import (
	"voucher-settlement/internal/adapter/http/dto"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/pkg/apperror"
	"voucher-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the conservation check to operators.
type ReconciliationHandler struct {
	reconciliationSvc ports.ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(svc ports.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationSvc: svc}
}

// GetStatus handles GET /api/v1/reconciliation.
func (h *ReconciliationHandler) GetStatus(c *gin.Context) {
	status, err := h.reconciliationSvc.Status(c.Request.Context(), c.Query("account"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// CheckGeneration handles POST /api/v1/reconciliation/generation-check.
func (h *ReconciliationHandler) CheckGeneration(c *gin.Context) {
	var req dto.GenerationCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	blocked, err := h.reconciliationSvc.ShouldBlockGeneration(c.Request.Context(), req.Amount, req.AccountNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.GenerationCheckResponse{Blocked: blocked}
	if blocked {
		msg, err := h.reconciliationSvc.GenerationLimitMessage(c.Request.Context(), req.AccountNumber)
		if err != nil {
			response.Error(c, err)
			return
		}
		resp.Message = msg
	}
	response.OK(c, resp)
}
