package domain

import (
	"time"

	"github.com/google/uuid"
)

// CashValidationRules are the redemption restrictions attached to a
// voucher's cash instructions. Empty fields mean "not restricted".
type CashValidationRules struct {
	// SecretHash is the argon2id hash of the shared secret a redeemer
	// must present. Plaintext secrets are never stored.
	SecretHash string `json:"secret,omitempty"`
	// Mobile restricts redemption to one mobile number.
	Mobile string `json:"mobile,omitempty"`
	// Payable restricts redemption to one merchant identity (vendor alias).
	Payable string `json:"payable,omitempty"`
}

// CashInstructions configure the cash entity attached to a voucher.
type CashInstructions struct {
	Validation  CashValidationRules `json:"validation"`
	FeeStrategy string              `json:"fee_strategy,omitempty"` // absorb | charge
}

// InputInstructions list the form fields a redeemer must supply.
type InputInstructions struct {
	Fields []string `json:"fields,omitempty"`
}

// TimeWindow is a daily wall-clock window ("15:04" format) during which
// redemption is allowed. A window may wrap midnight (Start > End).
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// VoucherInstructions are the redemption rules issued with a voucher.
type VoucherInstructions struct {
	Cash       CashInstructions  `json:"cash"`
	Inputs     InputInstructions `json:"inputs"`
	Window     *TimeWindow       `json:"window,omitempty"`
	SessionTTL time.Duration     `json:"session_ttl,omitempty"`
}

// Voucher is the ledger entity this core operates on. The ledger itself
// is an external collaborator; vouchers surface here with their cash
// wallet reference and, once disbursement is attempted, a
// DisbursementRecord.
type Voucher struct {
	ID           uuid.UUID           `json:"id"`
	Code         string              `json:"code"`
	Instructions VoucherInstructions `json:"instructions"`

	// CashWalletID points at the voucher's cash sub-ledger; nil when the
	// voucher carries no pledged funds.
	CashWalletID *uuid.UUID `json:"cash_wallet_id,omitempty"`

	// MobileNumber is the redeeming contact's mobile, set on redemption.
	MobileNumber string `json:"mobile_number,omitempty"`

	Disbursement *DisbursementRecord `json:"disbursement,omitempty"`

	RedemptionStartedAt *time.Time `json:"redemption_started_at,omitempty"`
	RedeemedAt          *time.Time `json:"redeemed_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// HasCashWallet reports whether the voucher carries pledged funds.
func (v *Voucher) HasCashWallet() bool {
	return v.CashWalletID != nil
}
