package service

import (
	"context"
	"fmt"
	"time"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BalanceConfig carries the balance checker's injected settings.
type BalanceConfig struct {
	// DefaultAccount is the custodial account used when callers pass an
	// empty account number.
	DefaultAccount string
	// AlertThreshold seeds the default alert at startup, centavos.
	AlertThreshold  int64
	AlertRecipients []string
}

// BalanceServiceImpl implements ports.BalanceService. It refreshes the
// custodial snapshot from the gateway, appends the history row, and
// evaluates threshold alerts.
type BalanceServiceImpl struct {
	gateway    ports.PaymentGateway
	balances   ports.BalanceRepository
	transactor ports.DBTransactor
	notifier   ports.AlertNotifier
	cfg        BalanceConfig
	log        zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(
	gateway ports.PaymentGateway,
	balances ports.BalanceRepository,
	transactor ports.DBTransactor,
	notifier ports.AlertNotifier,
	cfg BalanceConfig,
	log zerolog.Logger,
) *BalanceServiceImpl {
	return &BalanceServiceImpl{
		gateway:    gateway,
		balances:   balances,
		transactor: transactor,
		notifier:   notifier,
		cfg:        cfg,
		log:        log,
	}
}

// CheckAndUpdate queries the gateway, replaces the (account, gateway)
// snapshot and appends a history row in one transaction, then fires any
// due alerts. Alert delivery failures never fail the check.
func (s *BalanceServiceImpl) CheckAndUpdate(ctx context.Context, accountNumber string) (*domain.AccountBalance, error) {
	account := s.account(accountNumber)

	report, err := s.gateway.CheckAccountBalance(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("check account balance: %w", err)
	}

	now := time.Now().UTC()
	snap := &domain.AccountBalance{
		ID:               uuid.New(),
		AccountNumber:    account,
		Gateway:          s.gateway.Name(),
		Balance:          report.Balance,
		AvailableBalance: report.AvailableBalance,
		Currency:         report.Currency,
		CheckedAt:        now,
		Raw:              report.Raw,
	}
	history := &domain.BalanceHistory{
		ID:               uuid.New(),
		AccountNumber:    account,
		Gateway:          snap.Gateway,
		Balance:          snap.Balance,
		AvailableBalance: snap.AvailableBalance,
		Currency:         snap.Currency,
		RecordedAt:       now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.balances.UpsertSnapshot(ctx, dbTx, snap); err != nil {
		return nil, fmt.Errorf("upsert balance snapshot: %w", err)
	}
	if err := s.balances.InsertHistory(ctx, dbTx, history); err != nil {
		return nil, fmt.Errorf("insert balance history: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit balance refresh: %w", err)
	}

	s.log.Info().
		Str("account", account).
		Int64("balance", snap.Balance).
		Int64("available_balance", snap.AvailableBalance).
		Msg("balance snapshot refreshed")

	s.evaluateAlerts(ctx, snap, now)
	return snap, nil
}

// evaluateAlerts fires every due alert at most once per UTC day.
func (s *BalanceServiceImpl) evaluateAlerts(ctx context.Context, snap *domain.AccountBalance, now time.Time) {
	alerts, err := s.balances.DueAlerts(ctx, snap.AccountNumber, snap.Gateway, snap.Balance)
	if err != nil {
		s.log.Error().Err(err).Str("account", snap.AccountNumber).Msg("failed to load due alerts")
		return
	}

	for i := range alerts {
		alert := alerts[i]
		if alert.TriggeredToday(now) {
			continue
		}
		if err := s.notifier.Notify(ctx, alert, snap); err != nil {
			s.log.Error().Err(err).
				Str("alert_id", alert.ID.String()).
				Str("channel", string(alert.Channel)).
				Msg("balance alert delivery failed")
			continue
		}
		if err := s.balances.MarkAlertTriggered(ctx, alert.ID, now); err != nil {
			s.log.Error().Err(err).
				Str("alert_id", alert.ID.String()).
				Msg("failed to mark alert triggered")
			continue
		}
		s.log.Warn().
			Str("account", snap.AccountNumber).
			Int64("balance", snap.Balance).
			Int64("threshold", alert.Threshold).
			Str("channel", string(alert.Channel)).
			Msg("low balance alert fired")
	}
}

// CurrentBalance returns the latest snapshot without hitting the gateway.
func (s *BalanceServiceImpl) CurrentBalance(ctx context.Context, accountNumber string) (*domain.AccountBalance, error) {
	account := s.account(accountNumber)
	snap, err := s.balances.GetSnapshot(ctx, account, s.gateway.Name())
	if err != nil {
		return nil, fmt.Errorf("get balance snapshot: %w", err)
	}
	if snap == nil {
		return nil, apperror.ErrNoBalanceSnapshot(account)
	}
	return snap, nil
}

// History returns the newest limit rows of the balance time series.
func (s *BalanceServiceImpl) History(ctx context.Context, accountNumber string, limit int) ([]domain.BalanceHistory, error) {
	rows, err := s.balances.ListHistory(ctx, s.account(accountNumber), s.gateway.Name(), limit)
	if err != nil {
		return nil, fmt.Errorf("list balance history: %w", err)
	}
	return rows, nil
}

// Trend returns history rows from the last days days, oldest first.
func (s *BalanceServiceImpl) Trend(ctx context.Context, accountNumber string, days int) ([]domain.BalanceHistory, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.balances.Trend(ctx, s.account(accountNumber), s.gateway.Name(), since)
	if err != nil {
		return nil, fmt.Errorf("balance trend: %w", err)
	}
	return rows, nil
}

// CreateAlert registers a new enabled threshold alert.
func (s *BalanceServiceImpl) CreateAlert(ctx context.Context, accountNumber string, threshold int64, channel domain.AlertChannel, recipients []string) (*domain.BalanceAlert, error) {
	alert := &domain.BalanceAlert{
		ID:            uuid.New(),
		AccountNumber: s.account(accountNumber),
		Gateway:       s.gateway.Name(),
		Threshold:     threshold,
		Channel:       channel,
		Recipients:    recipients,
		Enabled:       true,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.balances.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("create balance alert: %w", err)
	}
	return alert, nil
}

// IsBalanceLow compares the latest snapshot against threshold.
func (s *BalanceServiceImpl) IsBalanceLow(ctx context.Context, accountNumber string, threshold int64) (bool, error) {
	snap, err := s.CurrentBalance(ctx, accountNumber)
	if err != nil {
		return false, err
	}
	return snap.Balance < threshold, nil
}

func (s *BalanceServiceImpl) account(accountNumber string) string {
	if accountNumber != "" {
		return accountNumber
	}
	return s.cfg.DefaultAccount
}
