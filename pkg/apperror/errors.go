package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Redemption Validation (RDM) ----

func ErrRedemptionRejected(message string) *AppError {
	return New("RDM_001", message, http.StatusUnprocessableEntity)
}

func ErrVoucherNotFound(code string) *AppError {
	return New("RDM_002", fmt.Sprintf("Voucher %s not found", code), http.StatusNotFound)
}

func ErrVoucherAlreadyRedeemed(code string) *AppError {
	return New("RDM_003", fmt.Sprintf("Voucher %s has already been redeemed", code), http.StatusConflict)
}

// ---- Disbursement (DSB) ----

func ErrInvalidBankAccount() *AppError {
	return New("DSB_001", "Missing bank_code or account_number", http.StatusBadRequest)
}

func ErrBelowThreshold(amount, threshold int64) *AppError {
	return New("DSB_002",
		fmt.Sprintf("Amount %d is below minimum threshold %d", amount, threshold),
		http.StatusUnprocessableEntity)
}

func ErrInsufficientFunds() *AppError {
	return New("DSB_003", "Insufficient balance in cash wallet", http.StatusPaymentRequired)
}

func ErrNoDisbursement(code string) *AppError {
	return New("DSB_004", fmt.Sprintf("Voucher %s has no disbursement record", code), http.StatusNotFound)
}

func ErrUnknownRail(rail string) *AppError {
	return New("DSB_005", fmt.Sprintf("Unknown settlement rail %q", rail), http.StatusBadRequest)
}

// ---- Reconciliation (RCN) ----

func ErrGenerationBlocked(message string) *AppError {
	return New("RCN_001", message, http.StatusUnprocessableEntity)
}

// ---- Balance (BAL) ----

func ErrNoBalanceSnapshot(account string) *AppError {
	return New("BAL_001", fmt.Sprintf("No balance snapshot for account %s", account), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrGatewayUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Payment gateway unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a bad-request validation error with a custom message.
func Validation(message string) *AppError {
	return New("DSB_001", message, http.StatusBadRequest)
}
