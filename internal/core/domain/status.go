package domain

import (
	"strings"
	"sync"
)

// DisbursementStatus is the normalized lifecycle state of an outbound
// bank transfer. Gateway-specific vocabularies are mapped onto this set
// by per-gateway classifiers.
type DisbursementStatus string

const (
	DisbursementPending    DisbursementStatus = "pending"
	DisbursementProcessing DisbursementStatus = "processing"
	DisbursementSettled    DisbursementStatus = "settled"
	DisbursementFailed     DisbursementStatus = "failed"
	DisbursementCancelled  DisbursementStatus = "cancelled"
	DisbursementRefunded   DisbursementStatus = "refunded"
)

// IsTerminal returns true if no further status transition is expected.
func (s DisbursementStatus) IsTerminal() bool {
	switch s {
	case DisbursementSettled, DisbursementFailed, DisbursementCancelled, DisbursementRefunded:
		return true
	}
	return false
}

// InFlight returns true while the transfer is still moving.
func (s DisbursementStatus) InFlight() bool {
	return s == DisbursementPending || s == DisbursementProcessing
}

// StatusClassifier maps one gateway's raw status string onto the
// normalized vocabulary.
type StatusClassifier func(raw string) DisbursementStatus

var (
	classifierMu sync.RWMutex
	classifiers  = map[string]StatusClassifier{
		"netbank": classifyNetbank,
	}
)

// RegisterStatusClassifier installs a classifier for a gateway name.
// Later registrations replace earlier ones.
func RegisterStatusClassifier(gateway string, fn StatusClassifier) {
	classifierMu.Lock()
	defer classifierMu.Unlock()
	classifiers[strings.ToLower(gateway)] = fn
}

// StatusFromGateway normalizes a gateway-reported status. Gateways
// without a registered classifier fall back to a generic mapping.
func StatusFromGateway(gateway, raw string) DisbursementStatus {
	classifierMu.RLock()
	fn, ok := classifiers[strings.ToLower(gateway)]
	classifierMu.RUnlock()
	if ok {
		return fn(raw)
	}
	return classifyGeneric(raw)
}

// classifyNetbank maps the NetBank account-to-account vocabulary:
// Pending (debited from source), ForSettlement (forwarded to ACH),
// Settled (credited to target), Rejected (returned to source).
func classifyNetbank(raw string) DisbursementStatus {
	switch strings.ToUpper(strings.ReplaceAll(raw, " ", "")) {
	case "PENDING":
		return DisbursementPending
	case "FORSETTLEMENT":
		return DisbursementProcessing
	case "SETTLED":
		return DisbursementSettled
	case "REJECTED":
		return DisbursementFailed
	default:
		return DisbursementPending
	}
}

func classifyGeneric(raw string) DisbursementStatus {
	switch strings.ToLower(raw) {
	case "pending":
		return DisbursementPending
	case "processing", "in_transit", "forsettlement":
		return DisbursementProcessing
	case "settled", "completed", "success":
		return DisbursementSettled
	case "failed", "error", "rejected":
		return DisbursementFailed
	case "cancelled", "canceled":
		return DisbursementCancelled
	case "refunded":
		return DisbursementRefunded
	default:
		return DisbursementPending
	}
}
