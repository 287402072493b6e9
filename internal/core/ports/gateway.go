package ports

import (
	"context"
	"encoding/json"

	"voucher-settlement/internal/core/domain"
)

// DisburseOrder is the instruction handed to a payment gateway.
// Amount is in centavos; AccountNumber has already been reduced to
// digits.
type DisburseOrder struct {
	Reference     string
	Amount        int64
	BankCode      string
	AccountNumber string
	Rail          domain.SettlementRail
}

// DisburseReceipt is the gateway's acknowledgment of an accepted
// disbursement. A nil receipt with a nil error means the gateway
// declined the order.
type DisburseReceipt struct {
	TransactionID string
	UUID          string
	Status        string // gateway vocabulary, not yet normalized
	ReferenceID   string
	Raw           json.RawMessage
}

// StatusReport is the gateway's answer to a status poll.
type StatusReport struct {
	Status string // gateway vocabulary
	Raw    json.RawMessage
}

// BalanceReport is the gateway's answer to a balance query.
type BalanceReport struct {
	Balance          int64
	AvailableBalance int64
	Currency         string
	Raw              json.RawMessage
}

// Actor identifies who a disbursement is for. Either a settlement user
// or a voucher redeemer.
type Actor struct {
	ID     string
	Mobile string
}

// PaymentGateway is the abstract contract over the external payment
// rail provider. Transport and auth internals live in the adapter.
type PaymentGateway interface {
	// Disburse submits an outbound transfer. A nil receipt with a nil
	// error means the gateway declined; errors are transport failures.
	Disburse(ctx context.Context, actor Actor, order DisburseOrder) (*DisburseReceipt, error)
	// CheckDisbursementStatus polls the state of a prior disbursement.
	CheckDisbursementStatus(ctx context.Context, transactionID string) (*StatusReport, error)
	// CheckAccountBalance queries the custodial account balance.
	CheckAccountBalance(ctx context.Context, accountNumber string) (*BalanceReport, error)
	// RailFee returns the per-rail fee in centavos.
	RailFee(ctx context.Context, rail domain.SettlementRail) (int64, error)
	// Name identifies the gateway ("netbank", ...) for status
	// classification and enrichment.
	Name() string
}
