package dto

import "voucher-settlement/internal/core/domain"

// DisburseRequest is the ops API body for POST /disbursements.
type DisburseRequest struct {
	ActorID       string `json:"actor_id" binding:"required"`
	Mobile        string `json:"mobile" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	BankCode      string `json:"bank_code" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	PreferredRail string `json:"preferred_rail"`
	VoucherCode   string `json:"voucher_code"`
}

// GenerationCheckRequest asks whether issuing amount more centavos
// would overdraw the custodial account.
type GenerationCheckRequest struct {
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	AccountNumber string `json:"account_number"`
}

// GenerationCheckResponse is the advisory answer.
type GenerationCheckResponse struct {
	Blocked bool   `json:"blocked"`
	Message string `json:"message"`
}

// CreateAlertRequest registers a low balance alert.
type CreateAlertRequest struct {
	AccountNumber string   `json:"account_number"`
	Threshold     int64    `json:"threshold" binding:"required,gt=0"`
	Channel       string   `json:"channel" binding:"required,oneof=email sms webhook"`
	Recipients    []string `json:"recipients" binding:"required,min=1"`
}

// RedemptionCheckRequest carries one redemption attempt's inputs.
type RedemptionCheckRequest struct {
	Mobile      string            `json:"mobile" binding:"required"`
	Secret      string            `json:"secret"`
	VendorAlias string            `json:"vendor_alias"`
	Inputs      map[string]string `json:"inputs"`
	Latitude    *float64          `json:"latitude"`
	Longitude   *float64          `json:"longitude"`
	KYCApproved bool              `json:"kyc_approved"`
}

// RedemptionCheckResponse reports every violated constraint.
type RedemptionCheckResponse struct {
	Allowed       bool     `json:"allowed"`
	Failures      []string `json:"failures,omitempty"`
	MissingInputs []string `json:"missing_inputs,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// StatusRefreshResponse reports the outcome of a manual status poll.
type StatusRefreshResponse struct {
	Updated      bool                       `json:"updated"`
	Status       domain.DisbursementStatus  `json:"status"`
	Disbursement *domain.DisbursementRecord `json:"disbursement,omitempty"`
}
