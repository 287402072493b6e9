package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// statusLockTTL bounds how long a crashed poller can hold a voucher.
const statusLockTTL = 30 * time.Second

// StatusEnricher merges gateway-specific payload details into a
// disbursement record. Unknown fields are left untouched.
type StatusEnricher func(rec *domain.DisbursementRecord, raw json.RawMessage)

var (
	enricherMu sync.RWMutex
	enrichers  = map[string]StatusEnricher{
		"netbank": enrichFromNetbank,
	}
)

// RegisterStatusEnricher installs the enricher for a gateway name,
// replacing any existing one.
func RegisterStatusEnricher(gateway string, fn StatusEnricher) {
	enricherMu.Lock()
	defer enricherMu.Unlock()
	enrichers[gateway] = fn
}

func enricherFor(gateway string) (StatusEnricher, bool) {
	enricherMu.RLock()
	defer enricherMu.RUnlock()
	fn, ok := enrichers[gateway]
	return fn, ok
}

// DisbursementStatusServiceImpl implements ports.DisbursementStatusService.
type DisbursementStatusServiceImpl struct {
	gateway     ports.PaymentGateway
	voucherRepo ports.VoucherRepository
	locker      ports.VoucherLocker
	events      ports.EventPublisher
	log         zerolog.Logger
}

// NewDisbursementStatusService creates a new DisbursementStatusServiceImpl.
func NewDisbursementStatusService(
	gateway ports.PaymentGateway,
	voucherRepo ports.VoucherRepository,
	locker ports.VoucherLocker,
	events ports.EventPublisher,
	log zerolog.Logger,
) *DisbursementStatusServiceImpl {
	return &DisbursementStatusServiceImpl{
		gateway:     gateway,
		voucherRepo: voucherRepo,
		locker:      locker,
		events:      events,
		log:         log,
	}
}

// UpdateVoucherStatus polls the gateway for one voucher's disbursement
// and persists any state change. Returns false when there is nothing to
// do. The voucher lock guarantees at most one concurrent poller per
// voucher, which keeps the finalized event single-shot.
func (s *DisbursementStatusServiceImpl) UpdateVoucherStatus(ctx context.Context, voucher *domain.Voucher) (bool, error) {
	rec := voucher.Disbursement
	if rec == nil || rec.TransactionID == "" {
		return false, nil
	}
	if rec.IsTerminal() {
		return false, nil
	}

	release, ok, err := s.locker.Acquire(ctx, voucher.Code, statusLockTTL)
	if err != nil {
		return false, fmt.Errorf("acquire voucher lock: %w", err)
	}
	if !ok {
		s.log.Debug().Str("voucher", voucher.Code).Msg("voucher locked by another poller, skipping")
		return false, nil
	}
	defer release()

	report, err := s.gateway.CheckDisbursementStatus(ctx, rec.TransactionID)
	if err != nil {
		return false, fmt.Errorf("check disbursement status: %w", err)
	}

	newStatus := domain.StatusFromGateway(rec.Gateway, report.Status)
	if newStatus == rec.Status {
		return false, nil
	}

	s.log.Info().
		Str("voucher", voucher.Code).
		Str("transaction_id", rec.TransactionID).
		Str("from", string(rec.Status)).
		Str("to", string(newStatus)).
		Msg("disbursement status transition")

	now := time.Now().UTC()
	rec.Status = newStatus
	rec.StatusUpdatedAt = &now
	rec.Raw = report.Raw
	if enrich, found := enricherFor(rec.Gateway); found {
		enrich(rec, report.Raw)
	}

	if err := s.voucherRepo.SaveDisbursement(ctx, voucher.ID, rec); err != nil {
		return false, fmt.Errorf("save disbursement record: %w", err)
	}

	if newStatus.IsTerminal() {
		ev := domain.DisbursementFinalized{
			VoucherCode:   voucher.Code,
			TransactionID: rec.TransactionID,
			Status:        newStatus,
			Amount:        rec.Amount,
			Currency:      rec.Currency,
			FinalizedAt:   now,
		}
		if err := s.events.PublishDisbursementFinalized(ctx, ev); err != nil {
			// The status is already persisted; a lost event is
			// recoverable by the consumer's own polling.
			s.log.Error().Err(err).
				Str("voucher", voucher.Code).
				Msg("failed to publish disbursement finalized event")
		}
	}

	return true, nil
}

// UpdatePendingVouchers polls every in-flight voucher up to limit. One
// voucher's failure never stops the sweep.
func (s *DisbursementStatusServiceImpl) UpdatePendingVouchers(ctx context.Context, limit int) (int, error) {
	vouchers, err := s.voucherRepo.ListPendingDisbursements(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list pending disbursements: %w", err)
	}

	updated := 0
	for i := range vouchers {
		changed, err := s.UpdateVoucherStatus(ctx, &vouchers[i])
		if err != nil {
			s.log.Error().Err(err).
				Str("voucher", vouchers[i].Code).
				Msg("status update failed")
			continue
		}
		if changed {
			updated++
		}
	}

	s.log.Info().
		Int("scanned", len(vouchers)).
		Int("updated", updated).
		Msg("pending disbursement sweep complete")
	return updated, nil
}

// netbankStatusPayload mirrors the fields of interest in a netbank
// status response. status_details is the gateway's per-transition list
// of {status, updated} entries; reference_number, fees, sender_name and
// settlement_rail sit at the top level.
type netbankStatusPayload struct {
	ReferenceNumber string `json:"reference_number"`
	SenderName      string `json:"sender_name"`
	SettlementRail  string `json:"settlement_rail"`
	Fees            []struct {
		Amount struct {
			Num json.Number `json:"num"`
			Cur string      `json:"cur"`
		} `json:"amount"`
	} `json:"fees"`
	StatusDetails []struct {
		Status  string `json:"status"`
		Updated string `json:"updated"`
	} `json:"status_details"`
}

// enrichFromNetbank copies settlement details out of a netbank status
// payload. SettledAt comes from the first status-detail entry reporting
// "settled"; the full detail list becomes the status history, in
// gateway order. Absent fields never erase previously enriched values.
func enrichFromNetbank(rec *domain.DisbursementRecord, raw json.RawMessage) {
	var p netbankStatusPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return
	}

	for _, detail := range p.StatusDetails {
		if strings.EqualFold(detail.Status, "settled") && detail.Updated != "" {
			settledAt := detail.Updated
			rec.SettledAt = &settledAt
			break
		}
	}
	if p.ReferenceNumber != "" {
		rec.ReferenceNumber = p.ReferenceNumber
	}
	if p.SenderName != "" {
		rec.SenderName = p.SenderName
	}
	if rail, ok := domain.ParseSettlementRail(p.SettlementRail); ok {
		rec.SettlementRail = rail
	}
	if len(p.Fees) > 0 && p.Fees[0].Amount.Num != "" {
		minor, err := p.Fees[0].Amount.Num.Int64()
		if err == nil {
			rec.Fees = &domain.FeeDetail{Amount: minor, Currency: p.Fees[0].Amount.Cur}
		}
	}
	if len(p.StatusDetails) > 0 {
		history := make([]domain.StatusEvent, 0, len(p.StatusDetails))
		for _, detail := range p.StatusDetails {
			history = append(history, domain.StatusEvent{Status: detail.Status, Timestamp: detail.Updated})
		}
		rec.StatusHistory = history
	}
}
