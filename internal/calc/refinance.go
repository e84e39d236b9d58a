package calc

import (
	"math"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// RefinanceInput holds the refinance calculator inputs.
type RefinanceInput struct {
	CurrentBalance      float64 `json:"currentBalance" yaml:"currentBalance"`
	CurrentPayment      float64 `json:"currentPayment" yaml:"currentPayment"` // P&I only
	CurrentRatePercent  float64 `json:"currentRatePercent" yaml:"currentRatePercent"`
	NewRatePercent      float64 `json:"newRatePercent" yaml:"newRatePercent"`
	NewTerm             Term    `json:"newTerm" yaml:"newTerm"`
	ClosingCosts        float64 `json:"closingCosts,omitempty" yaml:"closingCosts,omitempty"`
	CashOut             float64 `json:"cashOut,omitempty" yaml:"cashOut,omitempty"`
	FinanceClosingCosts bool    `json:"financeClosingCosts,omitempty" yaml:"financeClosingCosts,omitempty"`
}

// RefinanceResult holds the refinance economics.
type RefinanceResult struct {
	NewLoanAmount      float64 `json:"newLoanAmount"`
	NewMonthlyPI       float64 `json:"newMonthlyPI"`
	MonthlySavings     float64 `json:"monthlySavings"`
	BreakEvenMonths    int     `json:"breakEvenMonths"`
	Recoups            bool    `json:"recoups"`
	NewTotalInterest   float64 `json:"newTotalInterest"`
	RemainingInterest  float64 `json:"remainingInterest"`
	LifetimeDifference float64 `json:"lifetimeDifference"`
}

// Validate rejects out-of-domain inputs.
func (in RefinanceInput) Validate() error {
	if err := validation.Positive("current balance", in.CurrentBalance); err != nil {
		return err
	}
	if err := validation.Positive("current payment", in.CurrentPayment); err != nil {
		return err
	}
	if err := validation.PercentRange("current rate", in.CurrentRatePercent, 100); err != nil {
		return err
	}
	if err := validation.PercentRange("new rate", in.NewRatePercent, 100); err != nil {
		return err
	}
	if err := in.NewTerm.Validate("new loan term"); err != nil {
		return err
	}
	if err := validation.NonNegative("closing costs", in.ClosingCosts); err != nil {
		return err
	}
	return validation.NonNegative("cash out", in.CashOut)
}

// ComputeRefinance sizes the new loan, compares payments, and finds the
// closing-cost break-even point. The remaining interest on the current loan
// is derived by simulating it to payoff at the current payment.
func ComputeRefinance(in RefinanceInput) (RefinanceResult, error) {
	if err := in.Validate(); err != nil {
		return RefinanceResult{}, err
	}

	newLoan := in.CurrentBalance + in.CashOut
	if in.FinanceClosingCosts {
		newLoan += in.ClosingCosts
	}
	termMonths := in.NewTerm.Months()
	newPayment := amortize.MonthlyPayment(newLoan, in.NewRatePercent, termMonths)
	monthlySavings := in.CurrentPayment - newPayment

	// Out-of-pocket costs recouped by the monthly savings.
	upfront := in.ClosingCosts
	if in.FinanceClosingCosts {
		upfront = 0
	}
	breakEven := 0
	recoups := true
	if upfront > 0 {
		if monthlySavings <= 0 {
			recoups = false
		} else {
			breakEven = int(math.Ceil(upfront / monthlySavings))
		}
	}

	// Interest left on the current loan if it simply rides to maturity.
	remaining, err := amortize.Simulate(in.CurrentBalance,
		amortize.MonthlyRate(in.CurrentRatePercent), in.CurrentPayment, amortize.Strategy{})
	if err != nil {
		return RefinanceResult{}, err
	}

	newTotalInterest := amortize.TotalInterest(newLoan, in.NewRatePercent, termMonths)

	return RefinanceResult{
		NewLoanAmount:      mathutil.Round(newLoan),
		NewMonthlyPI:       mathutil.Round(newPayment),
		MonthlySavings:     mathutil.Round(monthlySavings),
		BreakEvenMonths:    breakEven,
		Recoups:            recoups,
		NewTotalInterest:   mathutil.Round(newTotalInterest),
		RemainingInterest:  mathutil.Round(remaining.TotalInterest),
		LifetimeDifference: mathutil.Round(remaining.TotalInterest - newTotalInterest - in.ClosingCosts),
	}, nil
}
