package handler

import (
	"strconv"

	"voucher-settlement/internal/adapter/http/dto"
	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/pkg/apperror"
	"voucher-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// BalanceHandler exposes custodial balance checks and alerts.
type BalanceHandler struct {
	balanceSvc ports.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(svc ports.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceSvc: svc}
}

// GetBalance handles GET /api/v1/balance.
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	snap, err := h.balanceSvc.CurrentBalance(c.Request.Context(), c.Query("account"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// Refresh handles POST /api/v1/balance/check.
func (h *BalanceHandler) Refresh(c *gin.Context) {
	snap, err := h.balanceSvc.CheckAndUpdate(c.Request.Context(), c.Query("account"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// GetHistory handles GET /api/v1/balance/history.
func (h *BalanceHandler) GetHistory(c *gin.Context) {
	limit := intQuery(c, "limit", 30)
	rows, err := h.balanceSvc.History(c.Request.Context(), c.Query("account"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// GetTrend handles GET /api/v1/balance/trend.
func (h *BalanceHandler) GetTrend(c *gin.Context) {
	days := intQuery(c, "days", 7)
	rows, err := h.balanceSvc.Trend(c.Request.Context(), c.Query("account"), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// CreateAlert handles POST /api/v1/balance/alerts.
func (h *BalanceHandler) CreateAlert(c *gin.Context) {
	var req dto.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	alert, err := h.balanceSvc.CreateAlert(c.Request.Context(),
		req.AccountNumber, req.Threshold, domain.AlertChannel(req.Channel), req.Recipients)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, alert)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
