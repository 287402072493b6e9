package handler

import (
	"voucher-settlement/internal/adapter/http/dto"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/pkg/apperror"
	"voucher-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// DisbursementHandler exposes manual disbursement initiation.
type DisbursementHandler struct {
	disbursementSvc ports.DisbursementService
	voucherRepo     ports.VoucherRepository
}

// NewDisbursementHandler creates a new DisbursementHandler.
func NewDisbursementHandler(svc ports.DisbursementService, vouchers ports.VoucherRepository) *DisbursementHandler {
	return &DisbursementHandler{disbursementSvc: svc, voucherRepo: vouchers}
}

// Disburse handles POST /api/v1/disbursements. The outcome is always a
// structured result; only infrastructure failures map to error codes.
func (h *DisbursementHandler) Disburse(c *gin.Context) {
	var req dto.DisburseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	svcReq := ports.DisburseRequest{
		Actor:         ports.Actor{ID: req.ActorID, Mobile: req.Mobile},
		Amount:        req.Amount,
		BankCode:      req.BankCode,
		AccountNumber: req.AccountNumber,
		PreferredRail: req.PreferredRail,
	}

	if req.VoucherCode != "" {
		voucher, err := h.voucherRepo.GetByCode(c.Request.Context(), req.VoucherCode)
		if err != nil {
			response.Error(c, err)
			return
		}
		if voucher == nil {
			response.Error(c, apperror.ErrVoucherNotFound(req.VoucherCode))
			return
		}
		svcReq.Voucher = voucher
	}

	result, err := h.disbursementSvc.Disburse(c.Request.Context(), svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
