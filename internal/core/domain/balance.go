package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AccountBalance is the point-in-time snapshot of a custodial bank
// account, keyed by (account_number, gateway). Each check replaces the
// snapshot in place; the history table keeps the time series.
type AccountBalance struct {
	ID               uuid.UUID       `json:"id"`
	AccountNumber    string          `json:"account_number"`
	Gateway          string          `json:"gateway"`
	Balance          int64           `json:"balance"`
	AvailableBalance int64           `json:"available_balance"`
	Currency         string          `json:"currency"`
	CheckedAt        time.Time       `json:"checked_at"`
	Raw              json.RawMessage `json:"-"`
}

// BalanceHistory is one immutable row of the per-check time series.
type BalanceHistory struct {
	ID               uuid.UUID `json:"id"`
	AccountNumber    string    `json:"account_number"`
	Gateway          string    `json:"gateway"`
	Balance          int64     `json:"balance"`
	AvailableBalance int64     `json:"available_balance"`
	Currency         string    `json:"currency"`
	RecordedAt       time.Time `json:"recorded_at"`
}

// AlertChannel is the delivery channel of a balance alert.
type AlertChannel string

const (
	AlertChannelEmail   AlertChannel = "email"
	AlertChannelSMS     AlertChannel = "sms"
	AlertChannelWebhook AlertChannel = "webhook"
)

// BalanceAlert fires when an account's balance drops below a threshold.
type BalanceAlert struct {
	ID              uuid.UUID    `json:"id"`
	AccountNumber   string       `json:"account_number"`
	Gateway         string       `json:"gateway"`
	Threshold       int64        `json:"threshold"`
	Channel         AlertChannel `json:"channel"`
	Recipients      []string     `json:"recipients"`
	Enabled         bool         `json:"enabled"`
	LastTriggeredAt *time.Time   `json:"last_triggered_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// TriggeredToday guards against alert spam: at most one trigger per
// calendar day (UTC).
func (a *BalanceAlert) TriggeredToday(now time.Time) bool {
	if a.LastTriggeredAt == nil {
		return false
	}
	y1, m1, d1 := a.LastTriggeredAt.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
