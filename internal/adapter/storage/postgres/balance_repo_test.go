package postgres

import (
	"context"
	"testing"
	"time"

	"voucher-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBalance() *domain.AccountBalance {
	return &domain.AccountBalance{
		ID:               uuid.New(),
		AccountNumber:    "113-001-00001-9",
		Gateway:          "netbank",
		Balance:          15000000,
		AvailableBalance: 14500000,
		Currency:         "PHP",
		CheckedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestBalanceRepo_UpsertSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	b := newTestBalance()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bank_balances").
		WithArgs(b.ID, b.AccountNumber, b.Gateway, b.Balance,
			b.AvailableBalance, b.Currency, b.CheckedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpsertSnapshot(context.Background(), tx, b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_InsertHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	h := &domain.BalanceHistory{
		ID:               uuid.New(),
		AccountNumber:    "113-001-00001-9",
		Gateway:          "netbank",
		Balance:          15000000,
		AvailableBalance: 14500000,
		Currency:         "PHP",
		RecordedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bank_balance_history").
		WithArgs(h.ID, h.AccountNumber, h.Gateway, h.Balance,
			h.AvailableBalance, h.Currency, h.RecordedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.InsertHistory(context.Background(), tx, h)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	b := newTestBalance()

	mock.ExpectQuery("SELECT .+ FROM bank_balances").
		WithArgs(b.AccountNumber, b.Gateway).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "account_number", "gateway", "balance", "available_balance", "currency", "checked_at",
		}).AddRow(b.ID, b.AccountNumber, b.Gateway, b.Balance, b.AvailableBalance, b.Currency, b.CheckedAt))

	result, err := repo.GetSnapshot(context.Background(), b.AccountNumber, b.Gateway)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(15000000), result.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetSnapshot_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM bank_balances").
		WithArgs("999", "netbank").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "account_number", "gateway", "balance", "available_balance", "currency", "checked_at",
		}))

	result, err := repo.GetSnapshot(context.Background(), "999", "netbank")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_ListHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM bank_balance_history").
		WithArgs("113-001-00001-9", "netbank", 10).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "account_number", "gateway", "balance", "available_balance", "currency", "recorded_at",
		}).
			AddRow(uuid.New(), "113-001-00001-9", "netbank", int64(15000000), int64(14500000), "PHP", now).
			AddRow(uuid.New(), "113-001-00001-9", "netbank", int64(14000000), int64(13500000), "PHP", now.Add(-time.Hour)))

	history, err := repo.ListHistory(context.Background(), "113-001-00001-9", "netbank", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(15000000), history[0].Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_DueAlerts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	alertID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM balance_alerts").
		WithArgs("113-001-00001-9", "netbank", int64(5000000)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "account_number", "gateway", "threshold", "channel", "recipients", "enabled", "last_triggered_at", "created_at",
		}).AddRow(alertID, "113-001-00001-9", "netbank", int64(10000000),
			domain.AlertChannelEmail, []string{"finance@example.com"}, true, nil, time.Now().UTC()))

	alerts, err := repo.DueAlerts(context.Background(), "113-001-00001-9", "netbank", 5000000)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, alertID, alerts[0].ID)
	assert.Equal(t, domain.AlertChannelEmail, alerts[0].Channel)
	assert.Nil(t, alerts[0].LastTriggeredAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_MarkAlertTriggered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	alertID := uuid.New()
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE balance_alerts SET last_triggered_at").
		WithArgs(alertID, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.MarkAlertTriggered(context.Background(), alertID, at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
