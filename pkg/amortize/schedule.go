package amortize

import (
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
)

// Entry holds the values for a single month of an amortization schedule.
type Entry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// Schedule generates the full month-by-month amortization table for a loan,
// including any extra-payment strategy. The final month's payment shrinks to
// whatever retires the balance exactly.
func Schedule(principal, annualRatePercent float64, termMonths int, strategy Strategy) ([]Entry, error) {
	if principal <= 0 || termMonths <= 0 {
		return nil, nil
	}

	basePayment := MonthlyPayment(principal, annualRatePercent, termMonths)
	monthlyRate := MonthlyRate(annualRatePercent)

	if basePayment <= principal*monthlyRate {
		return nil, ErrNonAmortizing
	}

	entries := make([]Entry, 0, termMonths)
	balance := principal

	for month := 0; month < constants.MaxSimulationMonths; month++ {
		interest := balance * monthlyRate
		principalPortion := basePayment - interest + strategy.extraFor(month)
		if principalPortion > balance {
			principalPortion = balance
		}

		balance = mathutil.ClampNonNegative(balance - principalPortion)
		entries = append(entries, Entry{
			Month:     month + 1,
			Payment:   mathutil.Round(principalPortion + interest),
			Principal: mathutil.Round(principalPortion),
			Interest:  mathutil.Round(interest),
			Balance:   mathutil.Round(balance),
		})

		if mathutil.IsZero(balance) {
			return entries, nil
		}
	}

	return entries, ErrNonAmortizing
}
