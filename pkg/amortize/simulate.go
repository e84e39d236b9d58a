package amortize

import (
	"errors"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
)

// ErrNonAmortizing reports a payment too small to cover accruing interest;
// the balance never reaches zero no matter how long the loan runs.
var ErrNonAmortizing = errors.New("payment does not cover monthly interest; loan never amortizes")

// Frequency describes how often an extra recurring payment is made. The
// amounts are scaled to a monthly equivalent before entering the simulation.
type Frequency int

const (
	FrequencyMonthly Frequency = iota
	FrequencyBiweekly
	FrequencyWeekly
)

// Factor returns the monthly scaling factor for the frequency: a $100
// biweekly extra contributes 100 * 26/12 per month.
func (f Frequency) Factor() float64 {
	switch f {
	case FrequencyBiweekly:
		return constants.BiweeklyPaymentsPerYear / float64(constants.MonthsPerYear)
	case FrequencyWeekly:
		return constants.WeeksPerYear / float64(constants.MonthsPerYear)
	default:
		return 1
	}
}

// Cadence describes when a lump-sum payment recurs.
type Cadence int

const (
	CadenceOnce Cadence = iota
	CadenceYearly
	CadenceQuarterly
)

// appliesAt reports whether a lump sum lands on the given zero-based month
// index. Yearly lumps land on the first month of each 12-month block
// (calendar months 1, 13, 25, ...) and quarterly on months 1, 4, 7, ....
func (c Cadence) appliesAt(monthIndex int) bool {
	switch c {
	case CadenceOnce:
		return monthIndex == 0
	case CadenceYearly:
		return (monthIndex+1)%constants.MonthsPerYear == 1
	case CadenceQuarterly:
		return (monthIndex+1)%3 == 1
	default:
		return false
	}
}

// Strategy configures the extra payments applied during a payoff simulation.
// The zero value is the no-extras baseline.
type Strategy struct {
	ExtraMonthly   float64
	ExtraFrequency Frequency
	LumpSum        float64
	LumpCadence    Cadence
}

// extraFor returns the total extra principal contributed in a given month.
func (s Strategy) extraFor(monthIndex int) float64 {
	extra := 0.00
	if s.ExtraMonthly > 0 {
		extra += s.ExtraMonthly * s.ExtraFrequency.Factor()
	}
	if s.LumpSum > 0 && s.LumpCadence.appliesAt(monthIndex) {
		extra += s.LumpSum
	}
	return extra
}

// Result holds the outcome of one payoff simulation.
type Result struct {
	MonthsToPayoff int
	TotalInterest  float64
}

// Savings compares a configured strategy against the zero-extras baseline.
type Savings struct {
	Baseline      Result
	WithExtras    Result
	MonthsSaved   int
	InterestSaved float64
}

// Simulate runs the month-by-month payoff loop. basePayment is applied every
// month, the strategy's extra payments on top, and the running balance is
// charged monthlyRate of interest. The loop is bounded at
// constants.MaxSimulationMonths; a payment that cannot cover the first
// month's interest returns ErrNonAmortizing with a capped result rather than
// a poisoned value.
func Simulate(principal, monthlyRate, basePayment float64, strategy Strategy) (Result, error) {
	if principal <= 0 {
		return Result{}, nil
	}

	if basePayment <= principal*monthlyRate {
		return Result{MonthsToPayoff: constants.MaxSimulationMonths}, ErrNonAmortizing
	}

	balance := principal
	totalInterest := 0.00
	months := 0

	for month := 0; month < constants.MaxSimulationMonths; month++ {
		interest := balance * monthlyRate
		totalInterest += interest

		principalPortion := basePayment - interest + strategy.extraFor(month)

		balance = mathutil.ClampNonNegative(balance - principalPortion)
		months++

		if mathutil.IsZero(balance) {
			return Result{MonthsToPayoff: months, TotalInterest: totalInterest}, nil
		}
	}

	return Result{MonthsToPayoff: constants.MaxSimulationMonths, TotalInterest: totalInterest}, ErrNonAmortizing
}

// CompareStrategies simulates the zero-extras baseline and the configured
// strategy and reports the months and interest saved by the extras.
func CompareStrategies(principal, monthlyRate, basePayment float64, strategy Strategy) (Savings, error) {
	baseline, err := Simulate(principal, monthlyRate, basePayment, Strategy{})
	if err != nil {
		return Savings{Baseline: baseline}, err
	}

	withExtras, err := Simulate(principal, monthlyRate, basePayment, strategy)
	if err != nil {
		return Savings{Baseline: baseline, WithExtras: withExtras}, err
	}

	return Savings{
		Baseline:      baseline,
		WithExtras:    withExtras,
		MonthsSaved:   baseline.MonthsToPayoff - withExtras.MonthsToPayoff,
		InterestSaved: baseline.TotalInterest - withExtras.TotalInterest,
	}, nil
}
