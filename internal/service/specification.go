package service

import (
	"strings"
	"time"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"
)

// Specification identifiers, in guard evaluation order.
const (
	SpecSecret     = "secret"
	SpecMobile     = "mobile"
	SpecPayable    = "payable"
	SpecInputs     = "inputs"
	SpecKYC        = "kyc"
	SpecLocation   = "location"
	SpecTimeWindow = "time_window"
	SpecTimeLimit  = "time_limit"
)

// Form fields owned by dedicated specifications; the inputs
// specification skips them.
var specialInputFields = map[string]bool{
	"kyc":       true,
	"location":  true,
	"selfie":    true,
	"signature": true,
}

// SecretSpecification checks the shared secret against the voucher's
// stored hash. Vouchers without a secret requirement always pass.
type SecretSpecification struct {
	verifier ports.SecretVerifier
}

func NewSecretSpecification(verifier ports.SecretVerifier) *SecretSpecification {
	return &SecretSpecification{verifier: verifier}
}

func (s *SecretSpecification) ID() string { return SpecSecret }

func (s *SecretSpecification) IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool {
	hash := v.Instructions.Cash.Validation.SecretHash
	if hash == "" {
		return true
	}
	ok, err := s.verifier.Verify(ctx.Secret, hash)
	return err == nil && ok
}

// MobileSpecification restricts redemption to one mobile number.
type MobileSpecification struct{}

func NewMobileSpecification() *MobileSpecification { return &MobileSpecification{} }

func (s *MobileSpecification) ID() string { return SpecMobile }

func (s *MobileSpecification) IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool {
	required := v.Instructions.Cash.Validation.Mobile
	if required == "" {
		return true
	}
	return domain.NormalizeMobile(ctx.Mobile) == domain.NormalizeMobile(required)
}

// PayableSpecification restricts redemption to one merchant identity.
type PayableSpecification struct{}

func NewPayableSpecification() *PayableSpecification { return &PayableSpecification{} }

func (s *PayableSpecification) ID() string { return SpecPayable }

func (s *PayableSpecification) IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool {
	required := v.Instructions.Cash.Validation.Payable
	if required == "" {
		return true
	}
	return strings.EqualFold(ctx.VendorAlias, required)
}

// InputsSpecification verifies that every required form field was
// collected and is non-blank.
type InputsSpecification struct{}

func NewInputsSpecification() *InputsSpecification { return &InputsSpecification{} }

func (s *InputsSpecification) ID() string { return SpecInputs }

func (s *InputsSpecification) IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool {
	return len(s.MissingFields(v, ctx)) == 0
}

// MissingFields lists required fields absent from the context, in
// instruction order, for error reporting.
func (s *InputsSpecification) MissingFields(v *domain.Voucher, ctx domain.RedemptionContext) []string {
	var missing []string
	for _, field := range v.Instructions.Inputs.Fields {
		if specialInputFields[field] {
			continue
		}
		if strings.TrimSpace(ctx.Inputs[field]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// KYCSpecification requires an approved identity verification when the
// voucher asks for the kyc field.
type KYCSpecification struct{}

func NewKYCSpecification() *KYCSpecification { return &KYCSpecification{} }

func (s *KYCSpecification) ID() string { return SpecKYC }

func (s *KYCSpecification) IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool {
	if !requiresField(v, "kyc") {
		return true
	}
	return ctx.KYCApproved
}

// LocationSpecification requires geolocation data when the voucher asks
// for the location field.
type LocationSpecification struct{}

func NewLocationSpecification() *LocationSpecification { return &LocationSpecification{} }

func (s *LocationSpecification) ID() string { return SpecLocation }

func (s *LocationSpecification) IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool {
	if !requiresField(v, "location") {
		return true
	}
	return ctx.Latitude != nil && ctx.Longitude != nil
}

// TimeWindowSpecification allows redemption only inside the voucher's
// daily wall-clock window. The window may wrap midnight.
type TimeWindowSpecification struct{}

func NewTimeWindowSpecification() *TimeWindowSpecification { return &TimeWindowSpecification{} }

func (s *TimeWindowSpecification) ID() string { return SpecTimeWindow }

func (s *TimeWindowSpecification) IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool {
	w := v.Instructions.Window
	if w == nil {
		return true
	}
	start, err := time.Parse("15:04", w.Start)
	if err != nil {
		return true // malformed window does not lock out redeemers
	}
	end, err := time.Parse("15:04", w.End)
	if err != nil {
		return true
	}
	now := ctx.Now.Hour()*60 + ctx.Now.Minute()
	from := start.Hour()*60 + start.Minute()
	to := end.Hour()*60 + end.Minute()
	if from <= to {
		return now >= from && now <= to
	}
	// wraps midnight, e.g. 22:00-06:00
	return now >= from || now <= to
}

// TimeLimitSpecification caps the elapsed redemption session.
type TimeLimitSpecification struct{}

func NewTimeLimitSpecification() *TimeLimitSpecification { return &TimeLimitSpecification{} }

func (s *TimeLimitSpecification) ID() string { return SpecTimeLimit }

func (s *TimeLimitSpecification) IsSatisfiedBy(v *domain.Voucher, ctx domain.RedemptionContext) bool {
	ttl := v.Instructions.SessionTTL
	if ttl <= 0 || v.RedemptionStartedAt == nil {
		return true
	}
	return ctx.Now.Sub(*v.RedemptionStartedAt) <= ttl
}

func requiresField(v *domain.Voucher, name string) bool {
	for _, f := range v.Instructions.Inputs.Fields {
		if f == name {
			return true
		}
	}
	return false
}
