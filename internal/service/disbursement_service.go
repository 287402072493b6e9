package service

import (
	"context"
	"fmt"
	"time"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/pkg/money"

	"github.com/rs/zerolog"
)

// settlementReferencePrefix replaces the voucher code in traceable
// references for settlement auto-disbursements that have no voucher.
const settlementReferencePrefix = "SETTLE"

// DisbursementConfig carries the orchestrator's injected settings.
type DisbursementConfig struct {
	// MinimumAmount is the smallest disbursable amount in centavos.
	MinimumAmount int64
	Currency      string
}

// DisbursementServiceImpl implements ports.DisbursementService. It
// validates the payout destination, enforces the minimum threshold,
// selects a settlement rail, debits the voucher's cash wallet, and
// calls the payment gateway.
type DisbursementServiceImpl struct {
	gateway     ports.PaymentGateway
	voucherRepo ports.VoucherRepository
	wallets     ports.WalletLedger
	cfg         DisbursementConfig
	log         zerolog.Logger
}

// NewDisbursementService creates a new DisbursementServiceImpl.
func NewDisbursementService(
	gateway ports.PaymentGateway,
	voucherRepo ports.VoucherRepository,
	wallets ports.WalletLedger,
	cfg DisbursementConfig,
	log zerolog.Logger,
) *DisbursementServiceImpl {
	return &DisbursementServiceImpl{
		gateway:     gateway,
		voucherRepo: voucherRepo,
		wallets:     wallets,
		cfg:         cfg,
		log:         log,
	}
}

// MeetsMinimumThreshold reports whether amount (centavos) is disbursable.
func (s *DisbursementServiceImpl) MeetsMinimumThreshold(amount int64) bool {
	return amount >= s.cfg.MinimumAmount
}

// DetermineSettlementRail honors a known preferred rail
// (case-insensitive) and otherwise auto-selects by amount.
func (s *DisbursementServiceImpl) DetermineSettlementRail(amount int64, preferred string) domain.SettlementRail {
	if rail, ok := domain.ParseSettlementRail(preferred); ok {
		return rail
	}
	return domain.AutoSelectRail(amount)
}

// Fee returns the gateway's per-rail fee converted to display units
// (whole pesos).
func (s *DisbursementServiceImpl) Fee(ctx context.Context, rail domain.SettlementRail) (int64, error) {
	minor, err := s.gateway.RailFee(ctx, rail)
	if err != nil {
		return 0, fmt.Errorf("rail fee: %w", err)
	}
	return money.ToMajor(minor), nil
}

// Disburse runs the full orchestration. Validation and gateway failures
// come back as a structured result; only a cash-wallet debit failure is
// returned as an error, and it always happens before the gateway sees
// the order.
func (s *DisbursementServiceImpl) Disburse(ctx context.Context, req ports.DisburseRequest) (*ports.DisburseResult, error) {
	if req.BankCode == "" || req.AccountNumber == "" {
		return &ports.DisburseResult{
			Success: false,
			Message: "Invalid bank account data",
			Error:   "invalid_bank_account",
		}, nil
	}

	if !s.MeetsMinimumThreshold(req.Amount) {
		return &ports.DisburseResult{
			Success: false,
			Message: fmt.Sprintf("Amount %s is below minimum threshold %s",
				money.FormatPHP(req.Amount), money.FormatPHP(s.cfg.MinimumAmount)),
			Error: "below_threshold",
		}, nil
	}

	rail := s.DetermineSettlementRail(req.Amount, req.PreferredRail)
	reference := s.buildReference(req)

	order := ports.DisburseOrder{
		Reference:     reference,
		Amount:        req.Amount,
		BankCode:      req.BankCode,
		AccountNumber: req.AccountNumber,
		Rail:          rail,
	}

	s.log.Info().
		Str("actor", req.Actor.ID).
		Int64("amount", req.Amount).
		Str("bank_code", req.BankCode).
		Str("rail", string(rail)).
		Str("reference", reference).
		Msg("initiating disbursement")

	// Debit the cash wallet before the gateway call. A debit that
	// succeeds ahead of a failed gateway call is recoverable by manual
	// reconciliation; the reverse order could fabricate money.
	if req.Voucher != nil && req.Voucher.HasCashWallet() {
		if err := s.wallets.Withdraw(ctx, *req.Voucher.CashWalletID, req.Amount,
			reference, "Disbursed to external bank account"); err != nil {
			return nil, fmt.Errorf("withdraw cash wallet: %w", err)
		}
	}

	receipt, err := s.gateway.Disburse(ctx, req.Actor, order)
	if err != nil {
		s.log.Error().Err(err).
			Str("actor", req.Actor.ID).
			Str("reference", reference).
			Msg("disbursement exception")
		return &ports.DisburseResult{
			Success: false,
			Message: "Disbursement failed: " + err.Error(),
			Error:   "exception",
		}, nil
	}
	if receipt == nil {
		s.log.Warn().
			Str("actor", req.Actor.ID).
			Str("reference", reference).
			Msg("gateway declined disbursement")
		return &ports.DisburseResult{
			Success: false,
			Message: "Disbursement failed",
			Error:   "gateway_error",
		}, nil
	}

	if req.Voucher != nil {
		if err := s.recordDisbursement(ctx, req, rail, receipt); err != nil {
			// The transfer is in flight; the record write must not turn
			// it into a reported failure.
			s.log.Error().Err(err).
				Str("voucher", req.Voucher.Code).
				Str("transaction_id", receipt.TransactionID).
				Msg("failed to persist disbursement record")
		}
	}

	s.log.Info().
		Str("actor", req.Actor.ID).
		Str("transaction_id", receipt.TransactionID).
		Str("reference_id", receipt.ReferenceID).
		Msg("disbursement accepted")

	return &ports.DisburseResult{
		Success:       true,
		Message:       "Disbursement successful",
		TransactionID: receipt.TransactionID,
		ReferenceID:   receipt.ReferenceID,
	}, nil
}

// buildReference produces the traceable reference string
// "{voucher_code|SETTLE}-{normalized local mobile}".
func (s *DisbursementServiceImpl) buildReference(req ports.DisburseRequest) string {
	prefix := settlementReferencePrefix
	if req.Voucher != nil && req.Voucher.Code != "" {
		prefix = req.Voucher.Code
	}
	return prefix + "-" + domain.NormalizeMobile(req.Actor.Mobile)
}

// recordDisbursement creates the voucher's disbursement record from the
// gateway receipt. This is the only place the record is created.
func (s *DisbursementServiceImpl) recordDisbursement(
	ctx context.Context,
	req ports.DisburseRequest,
	rail domain.SettlementRail,
	receipt *ports.DisburseReceipt,
) error {
	now := time.Now().UTC()

	fee, err := s.gateway.RailFee(ctx, rail)
	if err != nil {
		s.log.Warn().Err(err).Str("rail", string(rail)).Msg("rail fee lookup failed, recording zero fee")
		fee = 0
	}

	status := domain.StatusFromGateway(s.gateway.Name(), receipt.Status)
	rec := &domain.DisbursementRecord{
		Gateway:         s.gateway.Name(),
		TransactionID:   receipt.TransactionID,
		TransactionUUID: receipt.UUID,
		Status:          status,
		Amount:          req.Amount,
		Currency:        s.cfg.Currency,
		SettlementRail:  rail,
		FeeAmount:       fee,
		TotalCost:       req.Amount + fee,
		FeeStrategy:     req.Voucher.Instructions.Cash.FeeStrategy,
		Recipient:       req.AccountNumber,
		PaymentMethod:   "bank_transfer",
		DisbursedAt:     now,
		StatusHistory: []domain.StatusEvent{
			{Status: receipt.Status, Timestamp: now.Format(time.RFC3339)},
		},
		Raw: receipt.Raw,
	}

	req.Voucher.Disbursement = rec
	return s.voucherRepo.SaveDisbursement(ctx, req.Voucher.ID, rec)
}
