package domain

import "strings"

// SettlementRail is one of the two interbank transfer networks used to
// move funds out of the custodial account.
type SettlementRail string

const (
	RailInstaPay SettlementRail = "INSTAPAY"
	RailPESONet  SettlementRail = "PESONET"
)

// InstaPayCeiling is the largest amount (in centavos) routed through
// INSTAPAY when auto-selecting; anything above goes out via PESONET.
const InstaPayCeiling int64 = 50_000 * 100

// ParseSettlementRail parses a rail name case-insensitively.
func ParseSettlementRail(s string) (SettlementRail, bool) {
	switch strings.ToUpper(s) {
	case string(RailInstaPay):
		return RailInstaPay, true
	case string(RailPESONet):
		return RailPESONet, true
	}
	return "", false
}

// AutoSelectRail picks a rail for an amount in centavos.
func AutoSelectRail(amount int64) SettlementRail {
	if amount <= InstaPayCeiling {
		return RailInstaPay
	}
	return RailPESONet
}
