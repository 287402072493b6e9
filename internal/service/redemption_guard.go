package service

import (
	"fmt"
	"strings"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// RedemptionGuard evaluates every registered specification against a
// voucher and redemption context. All specifications run
// unconditionally, with no short-circuit, so every violated constraint
// surfaces in one pass.
type RedemptionGuard struct {
	specs  []ports.RedemptionSpecification
	inputs *InputsSpecification
	log    zerolog.Logger
}

// NewRedemptionGuard creates a guard over an explicit specification
// set, evaluated in the given order.
func NewRedemptionGuard(log zerolog.Logger, specs ...ports.RedemptionSpecification) *RedemptionGuard {
	g := &RedemptionGuard{specs: specs, log: log}
	for _, s := range specs {
		if is, ok := s.(*InputsSpecification); ok {
			g.inputs = is
		}
	}
	return g
}

// NewDefaultRedemptionGuard registers the full specification set in
// canonical order: secret, mobile, payable, inputs, kyc, location,
// time_window, time_limit.
func NewDefaultRedemptionGuard(verifier ports.SecretVerifier, log zerolog.Logger) *RedemptionGuard {
	return NewRedemptionGuard(log,
		NewSecretSpecification(verifier),
		NewMobileSpecification(),
		NewPayableSpecification(),
		NewInputsSpecification(),
		NewKYCSpecification(),
		NewLocationSpecification(),
		NewTimeWindowSpecification(),
		NewTimeLimitSpecification(),
	)
}

// Check runs the full specification set and aggregates every failing
// identifier in evaluation order.
func (g *RedemptionGuard) Check(v *domain.Voucher, ctx domain.RedemptionContext) domain.ValidationResult {
	result := domain.ValidationResult{}

	for _, spec := range g.specs {
		if spec.IsSatisfiedBy(v, ctx) {
			continue
		}
		result.Failures = append(result.Failures, spec.ID())
		if spec.ID() == SpecInputs && g.inputs != nil {
			result.MissingInputs = g.inputs.MissingFields(v, ctx)
		}
	}

	if result.Failed() {
		g.log.Info().
			Str("voucher", v.Code).
			Strs("failures", result.Failures).
			Msg("redemption rejected")
	}

	return result
}

// failureMessages maps each identifier to one human message.
var failureMessages = map[string]string{
	SpecSecret:     "The secret provided is incorrect.",
	SpecMobile:     "This voucher is restricted to a different mobile number.",
	SpecPayable:    "This voucher is payable to a different merchant.",
	SpecKYC:        "Approved identity verification is required.",
	SpecLocation:   "Location data is required to redeem this voucher.",
	SpecTimeWindow: "This voucher can only be redeemed within its allowed hours.",
	SpecTimeLimit:  "The redemption session has expired.",
}

// FailureMessages renders one human-readable message per failure,
// concatenated in evaluation order. The inputs failure enumerates the
// missing field names.
func (g *RedemptionGuard) FailureMessages(result domain.ValidationResult) string {
	var msgs []string
	for _, id := range result.Failures {
		if id == SpecInputs {
			msgs = append(msgs, fmt.Sprintf("Missing required fields: %s.",
				domain.FormatFieldList(result.MissingInputs)))
			continue
		}
		if m, ok := failureMessages[id]; ok {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, " ")
}
