// Package calc implements the individual mortgage calculators on top of the
// shared amortization core. Each calculator is a pure function from a
// validated input struct to a result struct; all unit juggling (percent vs
// dollar figures, years vs months, enum strings) is resolved here at the
// boundary so only canonical numbers reach pkg/amortize.
package calc

import (
	"fmt"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// Unit strings accepted on AmountOrPercent and Term inputs.
const (
	UnitAmount  = "amount"
	UnitPercent = "percent"
	UnitYears   = "years"
	UnitMonths  = "months"
)

// AmountOrPercent is a user figure entered either as dollars or as a
// percentage of some base (home price, loan amount). It is resolved to a
// dollar amount exactly once, at the boundary.
type AmountOrPercent struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Resolve converts the figure to dollars against the given base.
func (a AmountOrPercent) Resolve(base float64) float64 {
	if a.Unit == UnitPercent {
		return mathutil.ApplyPercentage(base, a.Value)
	}
	return a.Value
}

// Validate checks the unit tag and rejects negative figures.
func (a AmountOrPercent) Validate(name string) error {
	switch a.Unit {
	case "", UnitAmount, UnitPercent:
	default:
		return fmt.Errorf("%s unit must be %q or %q, got %q", name, UnitAmount, UnitPercent, a.Unit)
	}
	return validation.NonNegative(name, a.Value)
}

// Term is a loan term entered in years or months, resolved to months.
type Term struct {
	Value int    `json:"value" yaml:"value"`
	Unit  string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Months converts the term to its canonical month count.
func (t Term) Months() int {
	if t.Unit == UnitMonths {
		return t.Value
	}
	return t.Value * constants.MonthsPerYear
}

// Validate checks the unit tag and requires a positive term.
func (t Term) Validate(name string) error {
	switch t.Unit {
	case "", UnitYears, UnitMonths:
	default:
		return fmt.Errorf("%s unit must be %q or %q, got %q", name, UnitYears, UnitMonths, t.Unit)
	}
	return validation.PositiveMonths(name, t.Months())
}

// ExtraPayments carries the payoff-acceleration settings in wire-friendly
// form; strategy() converts it to the core's typed representation.
type ExtraPayments struct {
	Monthly     float64 `json:"monthly,omitempty" yaml:"monthly,omitempty"`
	Frequency   string  `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	LumpSum     float64 `json:"lumpSum,omitempty" yaml:"lumpSum,omitempty"`
	LumpCadence string  `json:"lumpCadence,omitempty" yaml:"lumpCadence,omitempty"`
}

// Enabled reports whether any extra payment is configured.
func (e ExtraPayments) Enabled() bool {
	return e.Monthly > 0 || e.LumpSum > 0
}

func (e ExtraPayments) strategy() (amortize.Strategy, error) {
	strategy := amortize.Strategy{
		ExtraMonthly: e.Monthly,
		LumpSum:      e.LumpSum,
	}

	switch e.Frequency {
	case "", "monthly":
		strategy.ExtraFrequency = amortize.FrequencyMonthly
	case "biweekly":
		strategy.ExtraFrequency = amortize.FrequencyBiweekly
	case "weekly":
		strategy.ExtraFrequency = amortize.FrequencyWeekly
	default:
		return amortize.Strategy{}, fmt.Errorf("extra payment frequency must be monthly, biweekly, or weekly; got %q", e.Frequency)
	}

	switch e.LumpCadence {
	case "", "once":
		strategy.LumpCadence = amortize.CadenceOnce
	case "yearly":
		strategy.LumpCadence = amortize.CadenceYearly
	case "quarterly":
		strategy.LumpCadence = amortize.CadenceQuarterly
	default:
		return amortize.Strategy{}, fmt.Errorf("lump sum cadence must be once, yearly, or quarterly; got %q", e.LumpCadence)
	}

	return strategy, nil
}

// Validate checks amounts and enum strings.
func (e ExtraPayments) Validate() error {
	if err := validation.NonNegative("extra monthly payment", e.Monthly); err != nil {
		return err
	}
	if err := validation.NonNegative("lump sum", e.LumpSum); err != nil {
		return err
	}
	_, err := e.strategy()
	return err
}
