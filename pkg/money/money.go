// Package money formats minor-unit amounts for display.
//
// All balances in this system are carried as int64 centavos; this package
// owns the conversion to human-readable peso strings used in reconciliation
// reports and alert messages.
package money

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// CentavosPerPeso is the minor-unit scale for PHP.
	CentavosPerPeso = 100

	pesoSign = "₱"
)

var printer = message.NewPrinter(language.MustParse("en-PH"))

// FormatPHP renders a centavo amount as a grouped peso string, e.g.
// 123456789 -> "₱1,234,567.89". Integer math throughout, so amounts
// beyond float64's 53-bit mantissa stay exact.
func FormatPHP(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	pesos := minor / CentavosPerPeso
	centavos := minor % CentavosPerPeso
	return sign + pesoSign + printer.Sprint(number.Decimal(pesos)) + fmt.Sprintf(".%02d", centavos)
}

// ToMajor converts centavos to whole pesos, truncating fractions.
func ToMajor(minor int64) int64 {
	return minor / CentavosPerPeso
}

// FromMajor converts whole pesos to centavos.
func FromMajor(major int64) int64 {
	return major * CentavosPerPeso
}
