package calc

import (
	"fmt"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// LoanProgram selects the fee stack applied to a purchase loan.
type LoanProgram string

const (
	ProgramConventional LoanProgram = "conventional"
	ProgramFHA          LoanProgram = "fha"
	ProgramUSDA         LoanProgram = "usda"
)

// PurchaseInput holds the home purchase calculator inputs.
type PurchaseInput struct {
	HomePrice        float64         `json:"homePrice" yaml:"homePrice"`
	DownPayment      AmountOrPercent `json:"downPayment" yaml:"downPayment"`
	RatePercent      float64         `json:"ratePercent" yaml:"ratePercent"`
	Term             Term            `json:"term" yaml:"term"`
	Program          LoanProgram     `json:"program,omitempty" yaml:"program,omitempty"`
	PropertyTax      AmountOrPercent `json:"propertyTax,omitempty" yaml:"propertyTax,omitempty"`       // annual
	HomeInsurance    float64         `json:"homeInsurance,omitempty" yaml:"homeInsurance,omitempty"`   // annual
	PMIAnnualPercent float64         `json:"pmiAnnualPercent,omitempty" yaml:"pmiAnnualPercent,omitempty"`
	HOAMonthly       float64         `json:"hoaMonthly,omitempty" yaml:"hoaMonthly,omitempty"`
	Extras           ExtraPayments   `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// PurchaseResult holds the derived deal economics for a purchase.
type PurchaseResult struct {
	LoanAmount        float64           `json:"loanAmount"`
	DownPaymentAmount float64           `json:"downPaymentAmount"`
	FinancedFee       float64           `json:"financedFee,omitempty"`
	LTVPercent        float64           `json:"ltvPercent"`
	MonthlyPI         float64           `json:"monthlyPI"`
	Breakdown         Breakdown         `json:"breakdown"`
	TotalMonthly      float64           `json:"totalMonthly"`
	TotalInterest     float64           `json:"totalInterest"`
	Payoff            *amortize.Savings `json:"payoff,omitempty"`
}

// Validate rejects out-of-domain inputs before any arithmetic runs.
func (in PurchaseInput) Validate() error {
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
	switch in.Program {
	case "", ProgramConventional, ProgramFHA, ProgramUSDA:
	default:
		return fmt.Errorf("loan program must be conventional, fha, or usda; got %q", in.Program)
	}
	if err := in.PropertyTax.Validate("property tax"); err != nil {
		return err
	}
	if err := validation.NonNegative("homeowners insurance", in.HomeInsurance); err != nil {
		return err
	}
	if err := validation.NonNegative("PMI rate", in.PMIAnnualPercent); err != nil {
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

// ComputePurchase derives the full purchase economics: loan sizing, program
// fees, monthly payment breakdown, lifetime interest, and the optional
// early-payoff comparison.
func ComputePurchase(in PurchaseInput) (PurchaseResult, error) {
	if err := in.Validate(); err != nil {
		return PurchaseResult{}, err
	}

	downPayment := in.DownPayment.Resolve(in.HomePrice)
	baseLoan := in.HomePrice - downPayment
	termMonths := in.Term.Months()

	// FHA and USDA finance their upfront fee into the loan.
	financedFee := 0.00
	monthlyProgramFee := 0.00
	pmiCategory := CategoryPMI
	switch in.Program {
	case ProgramFHA:
		financedFee = mathutil.ApplyPercentage(baseLoan, FHAUpfrontMIPPercent)
		monthlyProgramFee = mathutil.ApplyPercentage(baseLoan+financedFee, FHAAnnualMIPPercent) / constants.MonthsPerYear
		pmiCategory = CategoryMIP
	case ProgramUSDA:
		financedFee = mathutil.ApplyPercentage(baseLoan, USDAGuaranteeFeePercent)
		monthlyProgramFee = mathutil.ApplyPercentage(baseLoan+financedFee, USDAAnnualFeePercent) / constants.MonthsPerYear
		pmiCategory = CategoryUSDAAnnualFee
	default:
		// Conventional loans carry PMI only above the LTV cutoff.
		ltv := mathutil.CalculatePercentage(baseLoan, in.HomePrice)
		if ltv > constants.ConventionalPMICutoffLTV && in.PMIAnnualPercent > 0 {
			monthlyProgramFee = mathutil.ApplyPercentage(baseLoan, in.PMIAnnualPercent) / constants.MonthsPerYear
		}
	}

	loanAmount := baseLoan + financedFee
	monthlyPI := amortize.MonthlyPayment(loanAmount, in.RatePercent, termMonths)

	breakdown := newBreakdown(
		BreakdownItem{Category: CategoryPrincipalInterest, Monthly: monthlyPI},
		BreakdownItem{Category: CategoryPropertyTaxes, Monthly: in.PropertyTax.Resolve(in.HomePrice) / constants.MonthsPerYear},
		BreakdownItem{Category: CategoryHomeInsurance, Monthly: in.HomeInsurance / constants.MonthsPerYear},
		BreakdownItem{Category: pmiCategory, Monthly: monthlyProgramFee},
		BreakdownItem{Category: CategoryHOA, Monthly: in.HOAMonthly},
		BreakdownItem{Category: CategoryExtraPayment, Monthly: in.Extras.Monthly * mustFrequencyFactor(in.Extras)},
	)

	result := PurchaseResult{
		LoanAmount:        mathutil.Round(loanAmount),
		DownPaymentAmount: mathutil.Round(downPayment),
		FinancedFee:       mathutil.Round(financedFee),
		LTVPercent:        mathutil.Round(mathutil.CalculatePercentage(loanAmount, in.HomePrice)),
		MonthlyPI:         mathutil.Round(monthlyPI),
		Breakdown:         breakdown,
		TotalMonthly:      breakdown.Total(),
		TotalInterest:     mathutil.Round(amortize.TotalInterest(loanAmount, in.RatePercent, termMonths)),
	}

	if in.Extras.Enabled() {
		strategy, err := in.Extras.strategy()
		if err != nil {
			return PurchaseResult{}, err
		}
		savings, err := amortize.CompareStrategies(loanAmount, amortize.MonthlyRate(in.RatePercent), monthlyPI, strategy)
		if err != nil {
			return PurchaseResult{}, fmt.Errorf("payoff simulation: %w", err)
		}
		result.Payoff = &savings
	}

	return result, nil
}

// mustFrequencyFactor is safe after Validate; the strategy conversion cannot
// fail once the enum strings have been checked.
func mustFrequencyFactor(e ExtraPayments) float64 {
	strategy, err := e.strategy()
	if err != nil {
		return 1
	}
	return strategy.ExtraFrequency.Factor()
}
