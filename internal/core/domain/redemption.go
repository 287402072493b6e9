package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RedemptionContext is the immutable value object describing one
// redemption attempt. It is built once per attempt and handed to every
// specification unchanged.
type RedemptionContext struct {
	Mobile      string
	Secret      string
	VendorAlias string

	// Inputs are the collected form-field values keyed by field name.
	Inputs map[string]string

	BankCode          string
	BankAccountNumber string

	Latitude  *float64
	Longitude *float64

	KYCApproved bool

	// Now is the attempt's wall-clock time, injected for testability.
	Now time.Time
}

// ValidationResult aggregates every failing specification of one
// redemption check, in evaluation order.
type ValidationResult struct {
	Failures      []string
	MissingInputs []string
}

// Failed is true iff at least one specification rejected the attempt.
func (r ValidationResult) Failed() bool {
	return len(r.Failures) > 0
}

// HasFailure reports whether a specific identifier is in the failure set.
func (r ValidationResult) HasFailure(id string) bool {
	for _, f := range r.Failures {
		if f == id {
			return true
		}
	}
	return false
}

// NormalizeMobile reduces a mobile number to local digit form:
// "+63 917 301 1987" and "0917-301-1987" both become "09173011987".
func NormalizeMobile(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "63") && len(digits) == 12 {
		return "0" + digits[2:]
	}
	return digits
}

var fieldTitler = cases.Title(language.English)

// FormatFieldList renders field names for human messages: title-cased,
// comma-joined with a trailing "and". ["email","birth_date"] becomes
// "Email and Birth Date"; three or more become "A, B and C".
func FormatFieldList(fields []string) string {
	titled := make([]string, len(fields))
	for i, f := range fields {
		titled[i] = fieldTitler.String(strings.ReplaceAll(f, "_", " "))
	}
	switch len(titled) {
	case 0:
		return ""
	case 1:
		return titled[0]
	default:
		return strings.Join(titled[:len(titled)-1], ", ") + " and " + titled[len(titled)-1]
	}
}
