package postgres

import (
	"context"
	"fmt"
	"time"

	"voucher-settlement/pkg/apperror"

	"github.com/google/uuid"
)

// WalletRepo implements ports.WalletLedger over the double-entry wallet
// tables. Balances are centavos. The distinguished system wallet
// (system = true) backs issuance and is excluded from issued totals.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// TotalIssuedBalance sums every non-system wallet balance.
func (r *WalletRepo) TotalIssuedBalance(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM wallets WHERE system = false`

	var total int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("total issued balance: %w", err)
	}
	return total, nil
}

// Withdraw debits a wallet inside one transaction: lock the row, check
// coverage, decrement, and append the ledger entry. An uncovered debit
// returns apperror.ErrInsufficientFunds and leaves the wallet untouched.
func (r *WalletRepo) Withdraw(ctx context.Context, walletID uuid.UUID, amount int64, reference, memo string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin withdraw tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT balance FROM wallets WHERE id = $1 FOR UPDATE`,
		walletID,
	).Scan(&balance)
	if err != nil {
		return fmt.Errorf("lock wallet %s: %w", walletID, err)
	}

	if balance < amount {
		return apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx,
		`UPDATE wallets SET balance = balance - $2, updated_at = $3 WHERE id = $1`,
		walletID, amount, now,
	)
	if err != nil {
		return fmt.Errorf("debit wallet %s: %w", walletID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO wallet_entries (id, wallet_id, amount, reference, memo, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), walletID, -amount, reference, memo, now,
	)
	if err != nil {
		return fmt.Errorf("record wallet entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit withdraw tx: %w", err)
	}
	return nil
}
