package handler

import (
	"time"

	"voucher-settlement/internal/adapter/http/dto"
	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/pkg/apperror"
	"voucher-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// VoucherHandler exposes per-voucher disbursement tracking and the
// redemption precondition check.
type VoucherHandler struct {
	voucherRepo ports.VoucherRepository
	statusSvc   ports.DisbursementStatusService
	guard       ports.RedemptionChecker
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(
	vouchers ports.VoucherRepository,
	statusSvc ports.DisbursementStatusService,
	guard ports.RedemptionChecker,
) *VoucherHandler {
	return &VoucherHandler{voucherRepo: vouchers, statusSvc: statusSvc, guard: guard}
}

// RefreshStatus handles POST /api/v1/vouchers/:code/status/refresh.
func (h *VoucherHandler) RefreshStatus(c *gin.Context) {
	code := c.Param("code")
	voucher, err := h.voucherRepo.GetByCode(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	if voucher == nil {
		response.Error(c, apperror.ErrVoucherNotFound(code))
		return
	}
	if voucher.Disbursement == nil {
		response.Error(c, apperror.ErrNoDisbursement(code))
		return
	}

	updated, err := h.statusSvc.UpdateVoucherStatus(c.Request.Context(), voucher)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatusRefreshResponse{
		Updated:      updated,
		Status:       voucher.Disbursement.Status,
		Disbursement: voucher.Disbursement,
	})
}

// CheckRedemption handles POST /api/v1/vouchers/:code/redemption-check.
func (h *VoucherHandler) CheckRedemption(c *gin.Context) {
	code := c.Param("code")
	voucher, err := h.voucherRepo.GetByCode(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	if voucher == nil {
		response.Error(c, apperror.ErrVoucherNotFound(code))
		return
	}

	var req dto.RedemptionCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result := h.guard.Check(voucher, domain.RedemptionContext{
		Mobile:      req.Mobile,
		Secret:      req.Secret,
		VendorAlias: req.VendorAlias,
		Inputs:      req.Inputs,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		KYCApproved: req.KYCApproved,
		Now:         time.Now(),
	})

	resp := dto.RedemptionCheckResponse{
		Allowed:       !result.Failed(),
		Failures:      result.Failures,
		MissingInputs: result.MissingInputs,
	}
	if result.Failed() {
		resp.Message = h.guard.FailureMessages(result)
	}
	response.OK(c, resp)
}
