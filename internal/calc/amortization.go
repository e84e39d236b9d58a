package calc

import (
	"fmt"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// ScheduleInput holds an amortization schedule request.
type ScheduleInput struct {
	Principal   float64       `json:"principal" yaml:"principal"`
	RatePercent float64       `json:"ratePercent" yaml:"ratePercent"`
	Term        Term          `json:"term" yaml:"term"`
	Extras      ExtraPayments `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// Validate rejects out-of-domain inputs.
func (in ScheduleInput) Validate() error {
	if err := validation.Positive("principal", in.Principal); err != nil {
		return err
	}
	if err := validation.PercentRange("interest rate", in.RatePercent, 100); err != nil {
		return err
	}
	if err := in.Term.Validate("loan term"); err != nil {
		return err
	}
	return in.Extras.Validate()
}

// ComputeSchedule produces the month-by-month amortization table.
func ComputeSchedule(in ScheduleInput) ([]amortize.Entry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	strategy, err := in.Extras.strategy()
	if err != nil {
		return nil, err
	}
	return amortize.Schedule(in.Principal, in.RatePercent, in.Term.Months(), strategy)
}

// PayoffInput holds an early-payoff comparison request. MonthlyPayment
// overrides the payment derived from the term when set.
type PayoffInput struct {
	Principal      float64       `json:"principal" yaml:"principal"`
	RatePercent    float64       `json:"ratePercent" yaml:"ratePercent"`
	Term           Term          `json:"term" yaml:"term"`
	MonthlyPayment float64       `json:"monthlyPayment,omitempty" yaml:"monthlyPayment,omitempty"`
	Extras         ExtraPayments `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// PayoffResult pairs the payment used with the baseline/strategy comparison.
type PayoffResult struct {
	BasePayment float64          `json:"basePayment"`
	Savings     amortize.Savings `json:"savings"`
}

// Validate rejects out-of-domain inputs.
func (in PayoffInput) Validate() error {
	if err := validation.Positive("principal", in.Principal); err != nil {
		return err
	}
	if err := validation.PercentRange("interest rate", in.RatePercent, 100); err != nil {
		return err
	}
	if err := in.Term.Validate("loan term"); err != nil {
		return err
	}
	if err := validation.NonNegative("monthly payment", in.MonthlyPayment); err != nil {
		return err
	}
	return in.Extras.Validate()
}

// ComputePayoff compares the baseline payoff against the extra-payment
// strategy. A payment that does not cover first-month interest surfaces the
// non-amortizing error from the core.
func ComputePayoff(in PayoffInput) (PayoffResult, error) {
	if err := in.Validate(); err != nil {
		return PayoffResult{}, err
	}

	basePayment := in.MonthlyPayment
	if basePayment == 0 {
		basePayment = amortize.MonthlyPayment(in.Principal, in.RatePercent, in.Term.Months())
	}

	strategy, err := in.Extras.strategy()
	if err != nil {
		return PayoffResult{}, err
	}
	savings, err := amortize.CompareStrategies(in.Principal, amortize.MonthlyRate(in.RatePercent), basePayment, strategy)
	if err != nil {
		return PayoffResult{}, fmt.Errorf("payoff simulation: %w", err)
	}

	return PayoffResult{
		BasePayment: basePayment,
		Savings:     savings,
	}, nil
}
