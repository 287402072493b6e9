package ports

import (
	"context"
	"time"

	"voucher-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VoucherRepository defines persistence operations for vouchers. The
// voucher ledger itself (issuance, redemption) is owned elsewhere; this
// core only reads vouchers and writes their disbursement record.
type VoucherRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	// SaveDisbursement creates or replaces the voucher's disbursement
	// record. The record is append-only in spirit: callers never remove
	// history entries, only add to them.
	SaveDisbursement(ctx context.Context, voucherID uuid.UUID, rec *domain.DisbursementRecord) error
	// ListPendingDisbursements returns redeemed vouchers whose
	// disbursement is still in flight (pending or processing), up to limit.
	ListPendingDisbursements(ctx context.Context, limit int) ([]domain.Voucher, error)
}

// WalletLedger is the external double-entry ledger collaborator. Every
// user and every voucher cash entity owns exactly one wallet; the
// distinguished system wallet is excluded from issued-fund totals.
type WalletLedger interface {
	// TotalIssuedBalance sums every wallet balance except the system
	// wallet, in centavos.
	TotalIssuedBalance(ctx context.Context) (int64, error)
	// Withdraw atomically debits a wallet. Returns
	// apperror.ErrInsufficientFunds when the balance cannot cover amount.
	Withdraw(ctx context.Context, walletID uuid.UUID, amount int64, reference, memo string) error
}

// BalanceRepository persists bank balance snapshots, the append-only
// history, and threshold alerts. Methods accepting pgx.Tx are used
// inside transaction blocks.
type BalanceRepository interface {
	UpsertSnapshot(ctx context.Context, tx pgx.Tx, b *domain.AccountBalance) error
	GetSnapshot(ctx context.Context, accountNumber, gateway string) (*domain.AccountBalance, error)
	InsertHistory(ctx context.Context, tx pgx.Tx, h *domain.BalanceHistory) error
	ListHistory(ctx context.Context, accountNumber, gateway string, limit int) ([]domain.BalanceHistory, error)
	Trend(ctx context.Context, accountNumber, gateway string, since time.Time) ([]domain.BalanceHistory, error)
	CreateAlert(ctx context.Context, a *domain.BalanceAlert) error
	// DueAlerts returns enabled alerts whose threshold exceeds balance.
	DueAlerts(ctx context.Context, accountNumber, gateway string, balance int64) ([]domain.BalanceAlert, error)
	MarkAlertTriggered(ctx context.Context, alertID uuid.UUID, at time.Time) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
