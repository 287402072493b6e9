package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voucher-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VoucherRepo implements ports.VoucherRepository. The voucher's
// instructions and disbursement record are stored as JSONB columns;
// the disbursement column is NULL until the first payout attempt.
type VoucherRepo struct {
	pool Pool
}

// NewVoucherRepo creates a new VoucherRepo.
func NewVoucherRepo(pool Pool) *VoucherRepo {
	return &VoucherRepo{pool: pool}
}

const voucherColumns = `id, code, instructions, cash_wallet_id, mobile_number,
		disbursement, redemption_started_at, redeemed_at, created_at, updated_at`

// GetByCode fetches a voucher by its redemption code.
func (r *VoucherRepo) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE code = $1`

	v, err := scanVoucher(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher by code: %w", err)
	}
	return v, nil
}

// SaveDisbursement writes the voucher's disbursement record column.
func (r *VoucherRepo) SaveDisbursement(ctx context.Context, voucherID uuid.UUID, rec *domain.DisbursementRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal disbursement record: %w", err)
	}

	query := `UPDATE vouchers SET disbursement = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, voucherID, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save disbursement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("save disbursement: voucher %s not found", voucherID)
	}
	return nil
}

// ListPendingDisbursements returns redeemed vouchers whose disbursement
// is still in flight, oldest update first so stale ones are polled first.
func (r *VoucherRepo) ListPendingDisbursements(ctx context.Context, limit int) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE redeemed_at IS NOT NULL
		  AND disbursement IS NOT NULL
		  AND disbursement->>'status' IN ('pending', 'processing')
		ORDER BY updated_at ASC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending disbursements: %w", err)
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending voucher: %w", err)
		}
		vouchers = append(vouchers, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending vouchers: %w", err)
	}
	return vouchers, nil
}

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var (
		v            domain.Voucher
		instructions []byte
		disbursement []byte
	)
	err := row.Scan(
		&v.ID, &v.Code, &instructions, &v.CashWalletID, &v.MobileNumber,
		&disbursement, &v.RedemptionStartedAt, &v.RedeemedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(instructions) > 0 {
		if err := json.Unmarshal(instructions, &v.Instructions); err != nil {
			return nil, fmt.Errorf("unmarshal instructions: %w", err)
		}
	}
	if len(disbursement) > 0 {
		var rec domain.DisbursementRecord
		if err := json.Unmarshal(disbursement, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal disbursement record: %w", err)
		}
		v.Disbursement = &rec
	}
	return &v, nil
}
