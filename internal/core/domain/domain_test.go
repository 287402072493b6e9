package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ==================== Status Tests ====================

func TestStatusFromGateway_Netbank(t *testing.T) {
	tests := []struct {
		raw  string
		want DisbursementStatus
	}{
		{"Pending", DisbursementPending},
		{"PENDING", DisbursementPending},
		{"ForSettlement", DisbursementProcessing},
		{"For Settlement", DisbursementProcessing},
		{"Settled", DisbursementSettled},
		{"Rejected", DisbursementFailed},
		{"SomethingNew", DisbursementPending},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromGateway("netbank", tt.raw), "raw=%q", tt.raw)
	}
}

func TestStatusFromGateway_UnknownGatewayFallsBack(t *testing.T) {
	assert.Equal(t, DisbursementSettled, StatusFromGateway("icash", "completed"))
	assert.Equal(t, DisbursementProcessing, StatusFromGateway("icash", "in_transit"))
	assert.Equal(t, DisbursementCancelled, StatusFromGateway("icash", "canceled"))
	assert.Equal(t, DisbursementPending, StatusFromGateway("icash", "???"))
}

func TestRegisterStatusClassifier(t *testing.T) {
	RegisterStatusClassifier("demo-bank", func(raw string) DisbursementStatus {
		if raw == "DONE" {
			return DisbursementSettled
		}
		return DisbursementPending
	})
	assert.Equal(t, DisbursementSettled, StatusFromGateway("DEMO-BANK", "DONE"))
	assert.Equal(t, DisbursementPending, StatusFromGateway("demo-bank", "WIP"))
}

func TestDisbursementStatus_IsTerminal(t *testing.T) {
	assert.False(t, DisbursementPending.IsTerminal())
	assert.False(t, DisbursementProcessing.IsTerminal())
	assert.True(t, DisbursementSettled.IsTerminal())
	assert.True(t, DisbursementFailed.IsTerminal())
	assert.True(t, DisbursementCancelled.IsTerminal())
	assert.True(t, DisbursementRefunded.IsTerminal())
}

// ==================== Rail Tests ====================

func TestAutoSelectRail(t *testing.T) {
	assert.Equal(t, RailInstaPay, AutoSelectRail(1))
	assert.Equal(t, RailInstaPay, AutoSelectRail(InstaPayCeiling))
	assert.Equal(t, RailPESONet, AutoSelectRail(InstaPayCeiling+1))
}

func TestParseSettlementRail(t *testing.T) {
	rail, ok := ParseSettlementRail("pesonet")
	assert.True(t, ok)
	assert.Equal(t, RailPESONet, rail)

	rail, ok = ParseSettlementRail("InstaPay")
	assert.True(t, ok)
	assert.Equal(t, RailInstaPay, rail)

	_, ok = ParseSettlementRail("swift")
	assert.False(t, ok)
}

// ==================== Redemption Helpers ====================

func TestNormalizeMobile(t *testing.T) {
	tests := []struct{ in, want string }{
		{"09173011987", "09173011987"},
		{"0917-301-1987", "09173011987"},
		{"0 917 301 1987", "09173011987"},
		{"+639173011987", "09173011987"},
		{"639173011987", "09173011987"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeMobile(tt.in), "in=%q", tt.in)
	}
}

func TestFormatFieldList(t *testing.T) {
	assert.Equal(t, "", FormatFieldList(nil))
	assert.Equal(t, "Email", FormatFieldList([]string{"email"}))
	assert.Equal(t, "Email and Birth Date", FormatFieldList([]string{"email", "birth_date"}))
	assert.Equal(t, "Email, Name and Birth Date",
		FormatFieldList([]string{"email", "name", "birth_date"}))
}

func TestValidationResult(t *testing.T) {
	r := ValidationResult{}
	assert.False(t, r.Failed())

	r = ValidationResult{Failures: []string{"secret", "mobile"}}
	assert.True(t, r.Failed())
	assert.True(t, r.HasFailure("mobile"))
	assert.False(t, r.HasFailure("kyc"))
}

// ==================== Disbursement Record ====================

func TestDisbursementRecord_MaskedRecipient(t *testing.T) {
	r := &DisbursementRecord{Recipient: "09173011987"}
	assert.Equal(t, "***1987", r.MaskedRecipient())

	r = &DisbursementRecord{Recipient: "1987"}
	assert.Equal(t, "1987", r.MaskedRecipient())
}

// ==================== Balance Alert ====================

func TestBalanceAlert_TriggeredToday(t *testing.T) {
	now := time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC)

	a := &BalanceAlert{}
	assert.False(t, a.TriggeredToday(now))

	earlier := now.Add(-2 * time.Hour)
	a.LastTriggeredAt = &earlier
	assert.True(t, a.TriggeredToday(now))

	yesterday := now.Add(-24 * time.Hour)
	a.LastTriggeredAt = &yesterday
	assert.False(t, a.TriggeredToday(now))
}
