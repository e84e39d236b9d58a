// Package format renders currency and ratio values for display.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and locale-aware
// thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-%.2f", -amount)
	}
	return printer.Sprintf("%.2f", amount)
}

// Percent returns a percentage string with two decimals (e.g., "7.50%").
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// Term renders a month count as years and months (e.g., "25 years 4 months").
func Term(months int) string {
	if months < 0 {
		months = 0
	}
	years := months / constants.MonthsPerYear
	rem := months % constants.MonthsPerYear

	switch {
	case years == 0:
		return fmt.Sprintf("%d months", rem)
	case rem == 0:
		return fmt.Sprintf("%d years", years)
	default:
		return fmt.Sprintf("%d years %d months", years, rem)
	}
}
