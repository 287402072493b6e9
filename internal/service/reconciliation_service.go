package service

import (
	"context"
	"fmt"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/pkg/money"

	"github.com/rs/zerolog"
)

// ReconciliationConfig carries the guard's injected settings. Buffer
// amounts and thresholds are centavos and percentages respectively.
type ReconciliationConfig struct {
	Enabled bool
	// BufferAmount, when positive, is a fixed centavo buffer and takes
	// precedence over BufferPercent.
	BufferAmount  int64
	BufferPercent float64
	// WarningThresholdPercent marks the usage level treated as a warning.
	WarningThresholdPercent float64
	BlockGeneration         bool
	AllowOvergeneration     bool
	Override                bool
	SuppressWarnings        bool
	// DefaultAccount is the custodial account used when callers pass an
	// empty account number.
	DefaultAccount string
}

const (
	defaultBufferPercent    = 10.0
	defaultWarningThreshold = 90.0
)

// ReconciliationServiceImpl implements ports.ReconciliationService. It
// compares the sum of internally issued funds against the custodial
// bank balance and advises the issuance path. It never blocks by itself.
type ReconciliationServiceImpl struct {
	wallets  ports.WalletLedger
	balances ports.BalanceRepository
	gateway  ports.PaymentGateway
	cfg      ReconciliationConfig
	log      zerolog.Logger
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
// Zero-valued thresholds fall back to defaults.
func NewReconciliationService(
	wallets ports.WalletLedger,
	balances ports.BalanceRepository,
	gateway ports.PaymentGateway,
	cfg ReconciliationConfig,
	log zerolog.Logger,
) *ReconciliationServiceImpl {
	if cfg.BufferPercent <= 0 {
		cfg.BufferPercent = defaultBufferPercent
	}
	if cfg.WarningThresholdPercent <= 0 {
		cfg.WarningThresholdPercent = defaultWarningThreshold
	}
	return &ReconciliationServiceImpl{
		wallets:  wallets,
		balances: balances,
		gateway:  gateway,
		cfg:      cfg,
		log:      log,
	}
}

// TotalSystemBalance sums every non-system wallet, in centavos.
func (s *ReconciliationServiceImpl) TotalSystemBalance(ctx context.Context) (int64, error) {
	total, err := s.wallets.TotalIssuedBalance(ctx)
	if err != nil {
		return 0, fmt.Errorf("total issued balance: %w", err)
	}
	return total, nil
}

// BankBalance returns the latest custodial snapshot for the account, or
// zero when no snapshot exists yet.
func (s *ReconciliationServiceImpl) BankBalance(ctx context.Context, accountNumber string) (int64, error) {
	snap, err := s.balances.GetSnapshot(ctx, s.account(accountNumber), s.gateway.Name())
	if err != nil {
		return 0, fmt.Errorf("get balance snapshot: %w", err)
	}
	if snap == nil {
		return 0, nil
	}
	return snap.Balance, nil
}

// Buffer returns the reserved slice of the bank balance. A configured
// fixed amount takes precedence over the percentage.
func (s *ReconciliationServiceImpl) Buffer(bankBalance int64) int64 {
	if s.cfg.BufferAmount > 0 {
		return s.cfg.BufferAmount
	}
	return int64(float64(bankBalance) * s.cfg.BufferPercent / 100)
}

// AvailableAmount is the headroom left for new issuance, never negative.
func (s *ReconciliationServiceImpl) AvailableAmount(ctx context.Context, bankBalance int64) (int64, error) {
	system, err := s.TotalSystemBalance(ctx)
	if err != nil {
		return 0, err
	}
	available := bankBalance - system - s.Buffer(bankBalance)
	if available < 0 {
		available = 0
	}
	return available, nil
}

// Status produces the full advisory report. A positive discrepancy
// (more issued than held) is critical; high usage is a warning.
func (s *ReconciliationServiceImpl) Status(ctx context.Context, accountNumber string) (*domain.ReconciliationStatus, error) {
	if !s.cfg.Enabled {
		return &domain.ReconciliationStatus{
			Enabled: false,
			Health:  domain.ReconciliationDisabled,
			Message: "Reconciliation is disabled",
		}, nil
	}

	bank, err := s.BankBalance(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	system, err := s.TotalSystemBalance(ctx)
	if err != nil {
		return nil, err
	}

	buffer := s.Buffer(bank)
	discrepancy := system - bank
	available := bank - system - buffer
	if available < 0 {
		available = 0
	}
	usage := 0.0
	if bank > 0 {
		usage = float64(system) / float64(bank) * 100
	}

	health := domain.ReconciliationSafe
	message := "System balance is within safe limits"
	switch {
	case discrepancy > 0:
		health = domain.ReconciliationCritical
		message = fmt.Sprintf("CRITICAL: issued funds exceed bank balance by %s", money.FormatPHP(discrepancy))
		s.log.Error().
			Int64("system_balance", system).
			Int64("bank_balance", bank).
			Int64("discrepancy", discrepancy).
			Msg("reconciliation discrepancy detected")
	case usage >= s.cfg.WarningThresholdPercent:
		health = domain.ReconciliationWarning
		message = fmt.Sprintf("WARNING: %.1f%% of bank balance already issued", usage)
	}

	return &domain.ReconciliationStatus{
		Enabled:       true,
		Health:        health,
		Message:       message,
		BankBalance:   bank,
		SystemBalance: system,
		Discrepancy:   discrepancy,
		UsagePercent:  usage,
		Available:     available,
		Buffer:        buffer,
		Formatted: domain.ReconciliationDisplay{
			BankBalance:   money.FormatPHP(bank),
			SystemBalance: money.FormatPHP(system),
			Discrepancy:   money.FormatPHP(discrepancy),
			Available:     money.FormatPHP(available),
			Buffer:        money.FormatPHP(buffer),
		},
		Suppressed: s.cfg.SuppressWarnings,
	}, nil
}

// ShouldBlockGeneration advises whether issuing requestedAmount more
// centavos would overdraw the custodial account.
func (s *ReconciliationServiceImpl) ShouldBlockGeneration(ctx context.Context, requestedAmount int64, accountNumber string) (bool, error) {
	if !s.cfg.Enabled || s.cfg.Override || s.cfg.AllowOvergeneration || !s.cfg.BlockGeneration {
		return false, nil
	}

	bank, err := s.BankBalance(ctx, accountNumber)
	if err != nil {
		return false, err
	}
	available, err := s.AvailableAmount(ctx, bank)
	if err != nil {
		return false, err
	}
	return requestedAmount > available, nil
}

// GenerationLimitMessage renders the human-facing issuance headroom.
func (s *ReconciliationServiceImpl) GenerationLimitMessage(ctx context.Context, accountNumber string) (string, error) {
	bank, err := s.BankBalance(ctx, accountNumber)
	if err != nil {
		return "", err
	}
	available, err := s.AvailableAmount(ctx, bank)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Maximum voucher generation amount: %s", money.FormatPHP(available)), nil
}

func (s *ReconciliationServiceImpl) account(accountNumber string) string {
	if accountNumber != "" {
		return accountNumber
	}
	return s.cfg.DefaultAccount
}
