// Package amortize provides the shared fixed-rate loan math used by every
// calculator: monthly payment, remaining balance projection, lifetime
// interest, and the month-by-month payoff simulation with extra payments.
package amortize

import (
	"math"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
)

// MonthlyRate converts an annual percentage rate to a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// MonthlyPayment calculates the fixed monthly payment for a fully amortizing
// loan using the standard annuity formula. Zero-rate loans degrade to
// straight-line division. Degenerate inputs (no principal, no term) yield 0.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}

	periodicRate := MonthlyRate(annualRatePercent)
	if periodicRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// InterestPortion calculates the interest portion of one payment against the
// remaining principal.
func InterestPortion(remainingPrincipal, annualRatePercent float64) float64 {
	return remainingPrincipal * MonthlyRate(annualRatePercent)
}

// RemainingBalance projects the principal still owed after monthsElapsed
// payments of the given amount, clamped at zero. monthlyRate is a monthly
// fraction, not a percentage.
func RemainingBalance(principal, monthlyRate, payment float64, monthsElapsed int) float64 {
	if principal <= 0 {
		return 0
	}
	if monthsElapsed <= 0 {
		return principal
	}

	if monthlyRate == 0 {
		return mathutil.ClampNonNegative(principal - payment*float64(monthsElapsed))
	}

	growth := math.Pow(1.00+monthlyRate, float64(monthsElapsed))
	balance := principal*growth - payment*((growth-1.00)/monthlyRate)
	return mathutil.ClampNonNegative(balance)
}

// PrincipalForPayment inverts the annuity formula: the largest principal a
// given monthly payment can amortize over the term. Used by the
// affordability calculator.
func PrincipalForPayment(payment, annualRatePercent float64, termMonths int) float64 {
	if payment <= 0 || termMonths <= 0 {
		return 0
	}

	periodicRate := MonthlyRate(annualRatePercent)
	if periodicRate == 0 {
		return payment * float64(termMonths)
	}

	power := math.Pow(1.00+periodicRate, float64(termMonths))
	return payment * ((power - 1.00) / (periodicRate * power))
}

// TotalInterest calculates the interest paid over the full life of a loan.
func TotalInterest(principal, annualRatePercent float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	return MonthlyPayment(principal, annualRatePercent, termMonths)*float64(termMonths) - principal
}
