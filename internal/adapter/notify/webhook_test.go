package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voucher-settlement/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlert(recipients ...string) domain.BalanceAlert {
	return domain.BalanceAlert{
		Channel:    domain.AlertChannelWebhook,
		Threshold:  10000000,
		Recipients: recipients,
		Enabled:    true,
	}
}

func testBalance() *domain.AccountBalance {
	return &domain.AccountBalance{
		AccountNumber: "113-001-00001-9",
		Gateway:       "netbank",
		Balance:       5000000,
		Currency:      "PHP",
	}
}

func TestWebhookNotifier_Notify(t *testing.T) {
	var received webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(zerolog.Nop())
	err := n.Notify(context.Background(), testAlert(srv.URL), testBalance())
	require.NoError(t, err)

	assert.Equal(t, "balance.low", received.Event)
	assert.Equal(t, int64(5000000), received.Balance)
	assert.Equal(t, int64(10000000), received.Threshold)
	assert.Equal(t, "₱50,000.00", received.BalanceFormatted)
}

func TestWebhookNotifier_Notify_RecipientRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(zerolog.Nop())
	err := n.Notify(context.Background(), testAlert(srv.URL), testBalance())
	assert.Error(t, err)
}

func TestRouter_DispatchesByChannel(t *testing.T) {
	r := NewRouter(zerolog.Nop())

	// Email routes to the log notifier and always succeeds.
	alert := testAlert("finance@example.com")
	alert.Channel = domain.AlertChannelEmail
	assert.NoError(t, r.Notify(context.Background(), alert, testBalance()))

	// Unknown channels fall back to the log notifier.
	alert.Channel = domain.AlertChannel("pager")
	assert.NoError(t, r.Notify(context.Background(), alert, testBalance()))
}
