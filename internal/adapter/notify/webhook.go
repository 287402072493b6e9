package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/pkg/money"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// webhookPayload is the JSON body posted to each recipient URL.
type webhookPayload struct {
	Event            string `json:"event"`
	AccountNumber    string `json:"account_number"`
	Gateway          string `json:"gateway"`
	Balance          int64  `json:"balance"`
	BalanceFormatted string `json:"balance_formatted"`
	Threshold        int64  `json:"threshold"`
	Timestamp        int64  `json:"timestamp"`
}

// WebhookNotifier implements ports.AlertNotifier for the webhook
// channel: one POST per recipient URL.
type WebhookNotifier struct {
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewWebhookNotifier creates a webhook alert notifier.
func NewWebhookNotifier(log zerolog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Notify posts the alert to every recipient URL. Delivery fails if any
// recipient rejects or is unreachable.
func (n *WebhookNotifier) Notify(ctx context.Context, alert domain.BalanceAlert, balance *domain.AccountBalance) error {
	payload, err := json.Marshal(webhookPayload{
		Event:            "balance.low",
		AccountNumber:    balance.AccountNumber,
		Gateway:          balance.Gateway,
		Balance:          balance.Balance,
		BalanceFormatted: money.FormatPHP(balance.Balance),
		Threshold:        alert.Threshold,
		Timestamp:        time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	for _, target := range alert.Recipients {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build alert request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("deliver alert to %s: %w", target, err)
		}
		resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("alert webhook %s returned %d", target, resp.StatusCode)
		}

		n.log.Info().
			Str("target", target).
			Str("account", balance.AccountNumber).
			Msg("balance alert webhook delivered")
	}
	return nil
}
