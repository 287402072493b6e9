package ports

import (
	"context"
	"time"

	"voucher-settlement/internal/core/domain"
)

// DisburseRequest holds validated input for disbursement processing.
// Amount is in centavos.
type DisburseRequest struct {
	Actor         Actor
	Amount        int64
	BankCode      string
	AccountNumber string
	// PreferredRail is honored when it names a known rail
	// (case-insensitive); otherwise the rail is auto-selected by amount.
	PreferredRail string
	// Voucher, when present, identifies the voucher whose cash wallet
	// funds the disbursement and which receives the record.
	Voucher *domain.Voucher
}

// DisburseResult is the structured outcome of a disbursement attempt.
// Validation and gateway failures surface here, never as errors.
type DisburseResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
	Error         string `json:"error,omitempty"` // invalid_bank_account | below_threshold | gateway_error | exception
}

// DisbursementService initiates outbound transfers.
type DisbursementService interface {
	Disburse(ctx context.Context, req DisburseRequest) (*DisburseResult, error)
	MeetsMinimumThreshold(amount int64) bool
	DetermineSettlementRail(amount int64, preferred string) domain.SettlementRail
	// Fee returns the rail fee in display units (whole pesos).
	Fee(ctx context.Context, rail domain.SettlementRail) (int64, error)
}

// DisbursementStatusService tracks in-flight disbursements to a
// terminal state.
type DisbursementStatusService interface {
	// UpdateVoucherStatus polls the gateway for one voucher. Returns
	// false when there is nothing to do: no record, already terminal,
	// status unchanged, or another poller holds the voucher lock.
	UpdateVoucherStatus(ctx context.Context, voucher *domain.Voucher) (bool, error)
	// UpdatePendingVouchers runs the single-voucher routine over every
	// in-flight voucher up to limit, isolating per-item failures.
	// Returns the count actually updated.
	UpdatePendingVouchers(ctx context.Context, limit int) (int, error)
}

// ReconciliationService enforces the conservation invariant between
// internally recorded funds and custodial bank funds.
type ReconciliationService interface {
	TotalSystemBalance(ctx context.Context) (int64, error)
	BankBalance(ctx context.Context, accountNumber string) (int64, error)
	Buffer(bankBalance int64) int64
	AvailableAmount(ctx context.Context, bankBalance int64) (int64, error)
	Status(ctx context.Context, accountNumber string) (*domain.ReconciliationStatus, error)
	// ShouldBlockGeneration is advisory: the issuance path must consult
	// and honor it.
	ShouldBlockGeneration(ctx context.Context, requestedAmount int64, accountNumber string) (bool, error)
	GenerationLimitMessage(ctx context.Context, accountNumber string) (string, error)
}

// BalanceService refreshes custodial balance snapshots and evaluates
// threshold alerts.
type BalanceService interface {
	CheckAndUpdate(ctx context.Context, accountNumber string) (*domain.AccountBalance, error)
	CurrentBalance(ctx context.Context, accountNumber string) (*domain.AccountBalance, error)
	History(ctx context.Context, accountNumber string, limit int) ([]domain.BalanceHistory, error)
	Trend(ctx context.Context, accountNumber string, days int) ([]domain.BalanceHistory, error)
	CreateAlert(ctx context.Context, accountNumber string, threshold int64, channel domain.AlertChannel, recipients []string) (*domain.BalanceAlert, error)
	IsBalanceLow(ctx context.Context, accountNumber string, threshold int64) (bool, error)
}

// TokenClaims are the validated claims of an ops API token.
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenService issues and validates ops API bearer tokens.
type TokenService interface {
	Generate(subject, role string) (string, time.Time, error)
	Validate(token string) (*TokenClaims, error)
}

// RedemptionSpecification is one independently testable redemption
// precondition. Implementations are pure predicates over
// (voucher, context).
type RedemptionSpecification interface {
	// ID is the stable failure identifier ("secret", "mobile", ...).
	ID() string
	IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool
}

// RedemptionChecker evaluates the full specification set for one
// redemption attempt.
type RedemptionChecker interface {
	Check(v *domain.Voucher, ctx domain.RedemptionContext) domain.ValidationResult
	FailureMessages(result domain.ValidationResult) string
}

// SecretVerifier checks a plaintext shared secret against a stored hash.
type SecretVerifier interface {
	Verify(secret, hash string) (bool, error)
}

// VoucherLocker grants a single-writer guarantee per voucher for status
// polling, so concurrent pollers cannot double-fire finalization.
type VoucherLocker interface {
	// Acquire returns ok=false when another holder owns the lock. The
	// release func is safe to call once; the ttl bounds holder crashes.
	Acquire(ctx context.Context, voucherCode string, ttl time.Duration) (release func(), ok bool, err error)
}

// EventPublisher emits integration events to interested consumers.
type EventPublisher interface {
	PublishDisbursementFinalized(ctx context.Context, ev domain.DisbursementFinalized) error
}

// AlertNotifier delivers one balance alert over its channel.
type AlertNotifier interface {
	Notify(ctx context.Context, alert domain.BalanceAlert, balance *domain.AccountBalance) error
}
