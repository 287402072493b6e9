package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voucher-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository: the one-row-per-account
// snapshot, the append-only history, and threshold alerts.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// UpsertSnapshot replaces the (account_number, gateway) snapshot in
// place, within the caller's transaction.
func (r *BalanceRepo) UpsertSnapshot(ctx context.Context, tx pgx.Tx, b *domain.AccountBalance) error {
	query := `INSERT INTO bank_balances
			(id, account_number, gateway, balance, available_balance, currency, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_number, gateway) DO UPDATE SET
			balance = EXCLUDED.balance,
			available_balance = EXCLUDED.available_balance,
			currency = EXCLUDED.currency,
			checked_at = EXCLUDED.checked_at`

	_, err := tx.Exec(ctx, query,
		b.ID, b.AccountNumber, b.Gateway, b.Balance,
		b.AvailableBalance, b.Currency, b.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert balance snapshot: %w", err)
	}
	return nil
}

// GetSnapshot fetches the latest snapshot, nil when none exists yet.
func (r *BalanceRepo) GetSnapshot(ctx context.Context, accountNumber, gateway string) (*domain.AccountBalance, error) {
	query := `SELECT id, account_number, gateway, balance, available_balance, currency, checked_at
		FROM bank_balances WHERE account_number = $1 AND gateway = $2`

	b := &domain.AccountBalance{}
	err := r.pool.QueryRow(ctx, query, accountNumber, gateway).Scan(
		&b.ID, &b.AccountNumber, &b.Gateway, &b.Balance,
		&b.AvailableBalance, &b.Currency, &b.CheckedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance snapshot: %w", err)
	}
	return b, nil
}

// InsertHistory appends one time-series row within the caller's
// transaction.
func (r *BalanceRepo) InsertHistory(ctx context.Context, tx pgx.Tx, h *domain.BalanceHistory) error {
	query := `INSERT INTO bank_balance_history
			(id, account_number, gateway, balance, available_balance, currency, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		h.ID, h.AccountNumber, h.Gateway, h.Balance,
		h.AvailableBalance, h.Currency, h.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert balance history: %w", err)
	}
	return nil
}

// ListHistory returns the newest limit rows, most recent first.
func (r *BalanceRepo) ListHistory(ctx context.Context, accountNumber, gateway string, limit int) ([]domain.BalanceHistory, error) {
	query := `SELECT id, account_number, gateway, balance, available_balance, currency, recorded_at
		FROM bank_balance_history
		WHERE account_number = $1 AND gateway = $2
		ORDER BY recorded_at DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, accountNumber, gateway, limit)
	if err != nil {
		return nil, fmt.Errorf("list balance history: %w", err)
	}
	defer rows.Close()
	return collectHistory(rows)
}

// Trend returns rows recorded since the cutoff, oldest first.
func (r *BalanceRepo) Trend(ctx context.Context, accountNumber, gateway string, since time.Time) ([]domain.BalanceHistory, error) {
	query := `SELECT id, account_number, gateway, balance, available_balance, currency, recorded_at
		FROM bank_balance_history
		WHERE account_number = $1 AND gateway = $2 AND recorded_at >= $3
		ORDER BY recorded_at ASC`

	rows, err := r.pool.Query(ctx, query, accountNumber, gateway, since)
	if err != nil {
		return nil, fmt.Errorf("balance trend: %w", err)
	}
	defer rows.Close()
	return collectHistory(rows)
}

func collectHistory(rows pgx.Rows) ([]domain.BalanceHistory, error) {
	var history []domain.BalanceHistory
	for rows.Next() {
		var h domain.BalanceHistory
		err := rows.Scan(
			&h.ID, &h.AccountNumber, &h.Gateway, &h.Balance,
			&h.AvailableBalance, &h.Currency, &h.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan balance history: %w", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balance history: %w", err)
	}
	return history, nil
}

// CreateAlert inserts a new threshold alert.
func (r *BalanceRepo) CreateAlert(ctx context.Context, a *domain.BalanceAlert) error {
	query := `INSERT INTO balance_alerts
			(id, account_number, gateway, threshold, channel, recipients, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.AccountNumber, a.Gateway, a.Threshold,
		a.Channel, a.Recipients, a.Enabled, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create balance alert: %w", err)
	}
	return nil
}

// DueAlerts returns enabled alerts whose threshold exceeds balance.
func (r *BalanceRepo) DueAlerts(ctx context.Context, accountNumber, gateway string, balance int64) ([]domain.BalanceAlert, error) {
	query := `SELECT id, account_number, gateway, threshold, channel, recipients, enabled, last_triggered_at, created_at
		FROM balance_alerts
		WHERE account_number = $1 AND gateway = $2 AND enabled = true AND threshold > $3
		ORDER BY threshold DESC`

	rows, err := r.pool.Query(ctx, query, accountNumber, gateway, balance)
	if err != nil {
		return nil, fmt.Errorf("due alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.BalanceAlert
	for rows.Next() {
		var a domain.BalanceAlert
		err := rows.Scan(
			&a.ID, &a.AccountNumber, &a.Gateway, &a.Threshold,
			&a.Channel, &a.Recipients, &a.Enabled, &a.LastTriggeredAt, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan balance alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balance alerts: %w", err)
	}
	return alerts, nil
}

// MarkAlertTriggered stamps the alert's last trigger time.
func (r *BalanceRepo) MarkAlertTriggered(ctx context.Context, alertID uuid.UUID, at time.Time) error {
	query := `UPDATE balance_alerts SET last_triggered_at = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, alertID, at)
	if err != nil {
		return fmt.Errorf("mark alert triggered: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark alert triggered: alert %s not found", alertID)
	}
	return nil
}
