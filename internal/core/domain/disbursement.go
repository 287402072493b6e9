package domain

import (
	"encoding/json"
	"time"
)

// FeeDetail is the gateway-reported fee attached to a disbursement.
type FeeDetail struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// StatusEvent is one entry of the gateway-reported status history.
// The list preserves gateway order, which is not necessarily strictly
// chronological.
type StatusEvent struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// DisbursementRecord captures everything known about one outbound bank
// transfer initiated for a voucher. It is created once by the
// disbursement service, mutated only by the status service (status
// transitions and enrichment), and never deleted. The raw gateway
// payload is kept verbatim for audit.
type DisbursementRecord struct {
	Gateway         string             `json:"gateway"`
	TransactionID   string             `json:"transaction_id"`
	TransactionUUID string             `json:"transaction_uuid,omitempty"`
	Status          DisbursementStatus `json:"status"`
	Amount          int64              `json:"amount"`
	Currency        string             `json:"currency"`
	SettlementRail  SettlementRail     `json:"settlement_rail"`
	FeeAmount       int64              `json:"fee_amount"`
	TotalCost       int64              `json:"total_cost"`
	FeeStrategy     string             `json:"fee_strategy,omitempty"`
	Recipient       string             `json:"recipient_identifier"`
	RecipientName   string             `json:"recipient_name,omitempty"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	DisbursedAt     time.Time          `json:"disbursed_at"`
	StatusUpdatedAt *time.Time         `json:"status_updated_at,omitempty"`

	// Enrichment merged in by the status service from gateway reports.
	SettledAt       *string       `json:"settled_at,omitempty"`
	ReferenceNumber string        `json:"reference_number,omitempty"`
	Fees            *FeeDetail    `json:"fees,omitempty"`
	StatusHistory   []StatusEvent `json:"status_history,omitempty"`
	SenderName      string        `json:"sender_name,omitempty"`

	Raw json.RawMessage `json:"status_raw,omitempty"`
}

// IsTerminal reports whether the record reached a final state.
func (r *DisbursementRecord) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// MaskedRecipient shows only the last four characters of the recipient
// identifier, e.g. 09173011987 -> ***1987.
func (r *DisbursementRecord) MaskedRecipient() string {
	if len(r.Recipient) <= 4 {
		return r.Recipient
	}
	return "***" + r.Recipient[len(r.Recipient)-4:]
}

// DisbursementFinalized is the event raised exactly once when a
// disbursement reaches a terminal status.
type DisbursementFinalized struct {
	VoucherCode   string             `json:"voucher_code"`
	TransactionID string             `json:"transaction_id"`
	Status        DisbursementStatus `json:"status"`
	Amount        int64              `json:"amount"`
	Currency      string             `json:"currency"`
	FinalizedAt   time.Time          `json:"finalized_at"`
}
