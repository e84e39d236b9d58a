package calc

import (
	"fmt"
	"math"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// VAPurchaseInput holds the VA purchase calculator inputs. VA loans allow
// zero down and carry no PMI; the funding fee is financed into the loan.
type VAPurchaseInput struct {
	HomePrice     float64         `json:"homePrice" yaml:"homePrice"`
	DownPayment   AmountOrPercent `json:"downPayment,omitempty" yaml:"downPayment,omitempty"`
	RatePercent   float64         `json:"ratePercent" yaml:"ratePercent"`
	Term          Term            `json:"term" yaml:"term"`
	Usage         VAUsage         `json:"usage,omitempty" yaml:"usage,omitempty"`
	PropertyTax   AmountOrPercent `json:"propertyTax,omitempty" yaml:"propertyTax,omitempty"` // annual
	HomeInsurance float64         `json:"homeInsurance,omitempty" yaml:"homeInsurance,omitempty"` // annual
	HOAMonthly    float64         `json:"hoaMonthly,omitempty" yaml:"hoaMonthly,omitempty"`
	Extras        ExtraPayments   `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// VAPurchaseResult holds the derived VA purchase economics.
type VAPurchaseResult struct {
	FundingFeePercent float64           `json:"fundingFeePercent"`
	FundingFeeAmount  float64           `json:"fundingFeeAmount"`
	LoanAmount        float64           `json:"loanAmount"`
	MonthlyPI         float64           `json:"monthlyPI"`
	Breakdown         Breakdown         `json:"breakdown"`
	TotalMonthly      float64           `json:"totalMonthly"`
	TotalInterest     float64           `json:"totalInterest"`
	Payoff            *amortize.Savings `json:"payoff,omitempty"`
}

func validateVAUsage(usage VAUsage) error {
	switch usage {
	case "", VAFirstUse, VASubsequentUse, VAExempt:
		return nil
	default:
		return fmt.Errorf("VA usage must be first, subsequent, or exempt; got %q", usage)
	}
}

// Validate rejects out-of-domain inputs.
func (in VAPurchaseInput) Validate() error {
	if err := validation.Positive("home price", in.HomePrice); err != nil {
		return err
	}
	if err := in.DownPayment.Validate("down payment"); err != nil {
		return err
	}
	if err := validation.PercentRange("interest rate", in.RatePercent, 100); err != nil {
		return err
	}
	if err := in.Term.Validate("loan term"); err != nil {
		return err
	}
	if err := validateVAUsage(in.Usage); err != nil {
		return err
	}
	if err := in.PropertyTax.Validate("property tax"); err != nil {
		return err
	}
	if err := validation.NonNegative("homeowners insurance", in.HomeInsurance); err != nil {
		return err
	}
	if err := validation.NonNegative("HOA dues", in.HOAMonthly); err != nil {
		return err
	}
	if in.DownPayment.Resolve(in.HomePrice) > in.HomePrice {
		return fmt.Errorf("down payment exceeds home price")
	}
	return in.Extras.Validate()
}

// ComputeVAPurchase applies the funding-fee band for the borrower's usage
// tier and down payment, finances the fee, and derives the payment stack.
func ComputeVAPurchase(in VAPurchaseInput) (VAPurchaseResult, error) {
	if err := in.Validate(); err != nil {
		return VAPurchaseResult{}, err
	}

	usage := in.Usage
	if usage == "" {
		usage = VAFirstUse
	}

	downPayment := in.DownPayment.Resolve(in.HomePrice)
	downPercent := mathutil.CalculatePercentage(downPayment, in.HomePrice)
	baseLoan := in.HomePrice - downPayment

	feePercent := VAFundingFeePercent(usage, downPercent)
	feeAmount := mathutil.ApplyPercentage(baseLoan, feePercent)
	loanAmount := baseLoan + feeAmount

	termMonths := in.Term.Months()
	monthlyPI := amortize.MonthlyPayment(loanAmount, in.RatePercent, termMonths)

	breakdown := newBreakdown(
		BreakdownItem{Category: CategoryPrincipalInterest, Monthly: monthlyPI},
		BreakdownItem{Category: CategoryPropertyTaxes, Monthly: in.PropertyTax.Resolve(in.HomePrice) / constants.MonthsPerYear},
		BreakdownItem{Category: CategoryHomeInsurance, Monthly: in.HomeInsurance / constants.MonthsPerYear},
		BreakdownItem{Category: CategoryHOA, Monthly: in.HOAMonthly},
		BreakdownItem{Category: CategoryExtraPayment, Monthly: in.Extras.Monthly * mustFrequencyFactor(in.Extras)},
	)

	result := VAPurchaseResult{
		FundingFeePercent: feePercent,
		FundingFeeAmount:  mathutil.Round(feeAmount),
		LoanAmount:        mathutil.Round(loanAmount),
		MonthlyPI:         mathutil.Round(monthlyPI),
		Breakdown:         breakdown,
		TotalMonthly:      breakdown.Total(),
		TotalInterest:     mathutil.Round(amortize.TotalInterest(loanAmount, in.RatePercent, termMonths)),
	}

	if in.Extras.Enabled() {
		strategy, err := in.Extras.strategy()
		if err != nil {
			return VAPurchaseResult{}, err
		}
		savings, err := amortize.CompareStrategies(loanAmount, amortize.MonthlyRate(in.RatePercent), monthlyPI, strategy)
		if err != nil {
			return VAPurchaseResult{}, fmt.Errorf("payoff simulation: %w", err)
		}
		result.Payoff = &savings
	}

	return result, nil
}

// VARefinanceInput holds the VA interest rate reduction refinance (IRRRL)
// calculator inputs.
type VARefinanceInput struct {
	CurrentBalance float64 `json:"currentBalance" yaml:"currentBalance"`
	CurrentPayment float64 `json:"currentPayment" yaml:"currentPayment"`
	NewRatePercent float64 `json:"newRatePercent" yaml:"newRatePercent"`
	NewTerm        Term    `json:"newTerm" yaml:"newTerm"`
	Usage          VAUsage `json:"usage,omitempty" yaml:"usage,omitempty"`
	ClosingCosts   float64 `json:"closingCosts,omitempty" yaml:"closingCosts,omitempty"`
}

// VARefinanceResult holds the IRRRL economics.
type VARefinanceResult struct {
	FundingFeePercent float64 `json:"fundingFeePercent"`
	FundingFeeAmount  float64 `json:"fundingFeeAmount"`
	NewLoanAmount     float64 `json:"newLoanAmount"`
	NewMonthlyPI      float64 `json:"newMonthlyPI"`
	MonthlySavings    float64 `json:"monthlySavings"`
	BreakEvenMonths   int     `json:"breakEvenMonths"`
	Recoups           bool    `json:"recoups"`
	NewTotalInterest  float64 `json:"newTotalInterest"`
}

// Validate rejects out-of-domain inputs.
func (in VARefinanceInput) Validate() error {
	if err := validation.Positive("current balance", in.CurrentBalance); err != nil {
		return err
	}
	if err := validation.Positive("current payment", in.CurrentPayment); err != nil {
		return err
	}
	if err := validation.PercentRange("new rate", in.NewRatePercent, 100); err != nil {
		return err
	}
	if err := in.NewTerm.Validate("new loan term"); err != nil {
		return err
	}
	if err := validateVAUsage(in.Usage); err != nil {
		return err
	}
	return validation.NonNegative("closing costs", in.ClosingCosts)
}

// ComputeVARefinance rolls the IRRRL funding fee and closing costs into the
// new loan (the streamline refi is typically zero out-of-pocket) and
// compares payments.
func ComputeVARefinance(in VARefinanceInput) (VARefinanceResult, error) {
	if err := in.Validate(); err != nil {
		return VARefinanceResult{}, err
	}

	usage := in.Usage
	if usage == "" {
		usage = VAFirstUse
	}

	feePercent := VAIRRRLFundingFeePercent(usage)
	feeAmount := mathutil.ApplyPercentage(in.CurrentBalance, feePercent)
	newLoan := in.CurrentBalance + feeAmount + in.ClosingCosts

	termMonths := in.NewTerm.Months()
	newPayment := amortize.MonthlyPayment(newLoan, in.NewRatePercent, termMonths)
	monthlySavings := in.CurrentPayment - newPayment

	// Financed costs are recouped once cumulative savings cover them.
	financed := feeAmount + in.ClosingCosts
	breakEven := 0
	recoups := true
	if financed > 0 {
		if monthlySavings <= 0 {
			recoups = false
		} else {
			breakEven = int(math.Ceil(financed / monthlySavings))
		}
	}

	return VARefinanceResult{
		FundingFeePercent: feePercent,
		FundingFeeAmount:  mathutil.Round(feeAmount),
		NewLoanAmount:     mathutil.Round(newLoan),
		NewMonthlyPI:      mathutil.Round(newPayment),
		MonthlySavings:    mathutil.Round(monthlySavings),
		BreakEvenMonths:   breakEven,
		Recoups:           recoups,
		NewTotalInterest:  mathutil.Round(amortize.TotalInterest(newLoan, in.NewRatePercent, termMonths)),
	}, nil
}
