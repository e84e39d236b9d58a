package calc

import (
	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// Default DTI caps applied when the caller leaves them unset. These follow
// the conventional 28/36 qualifying rule.
const (
	DefaultFrontEndDTIPercent = 28.0
	DefaultBackEndDTIPercent  = 36.0
)

// AffordabilityInput holds the affordability calculator inputs.
type AffordabilityInput struct {
	AnnualIncome       float64 `json:"annualIncome" yaml:"annualIncome"`
	MonthlyDebts       float64 `json:"monthlyDebts,omitempty" yaml:"monthlyDebts,omitempty"`
	FrontEndDTIPercent float64 `json:"frontEndDTIPercent,omitempty" yaml:"frontEndDTIPercent,omitempty"`
	BackEndDTIPercent  float64 `json:"backEndDTIPercent,omitempty" yaml:"backEndDTIPercent,omitempty"`
	DownPayment        float64 `json:"downPayment,omitempty" yaml:"downPayment,omitempty"`
	RatePercent        float64 `json:"ratePercent" yaml:"ratePercent"`
	Term               Term    `json:"term" yaml:"term"`
	MonthlyTaxesIns    float64 `json:"monthlyTaxesIns,omitempty" yaml:"monthlyTaxesIns,omitempty"`
}

// AffordabilityResult holds the derived purchasing power.
type AffordabilityResult struct {
	MaxMonthlyPayment float64 `json:"maxMonthlyPayment"` // full housing budget
	MaxMonthlyPI      float64 `json:"maxMonthlyPI"`
	MaxLoanAmount     float64 `json:"maxLoanAmount"`
	MaxHomePrice      float64 `json:"maxHomePrice"`
	LimitingFactor    string  `json:"limitingFactor"` // "front-end" or "back-end"
}

// Validate rejects out-of-domain inputs.
func (in AffordabilityInput) Validate() error {
	if err := validation.Positive("annual income", in.AnnualIncome); err != nil {
		return err
	}
	if err := validation.NonNegative("monthly debts", in.MonthlyDebts); err != nil {
		return err
	}
	if err := validation.PercentRange("front-end DTI", in.FrontEndDTIPercent, 100); err != nil {
		return err
	}
	if err := validation.PercentRange("back-end DTI", in.BackEndDTIPercent, 100); err != nil {
		return err
	}
	if err := validation.NonNegative("down payment", in.DownPayment); err != nil {
		return err
	}
	if err := validation.PercentRange("interest rate", in.RatePercent, 100); err != nil {
		return err
	}
	if err := in.Term.Validate("loan term"); err != nil {
		return err
	}
	return validation.NonNegative("monthly taxes and insurance", in.MonthlyTaxesIns)
}

// ComputeAffordability finds the largest home price whose housing payment
// fits under both DTI caps, inverting the annuity formula to size the loan.
func ComputeAffordability(in AffordabilityInput) (AffordabilityResult, error) {
	if err := in.Validate(); err != nil {
		return AffordabilityResult{}, err
	}

	frontEnd := in.FrontEndDTIPercent
	if frontEnd == 0 {
		frontEnd = DefaultFrontEndDTIPercent
	}
	backEnd := in.BackEndDTIPercent
	if backEnd == 0 {
		backEnd = DefaultBackEndDTIPercent
	}

	monthlyIncome := in.AnnualIncome / constants.MonthsPerYear
	frontCap := mathutil.ApplyPercentage(monthlyIncome, frontEnd)
	backCap := mathutil.ApplyPercentage(monthlyIncome, backEnd) - in.MonthlyDebts

	limitingFactor := "front-end"
	maxPayment := frontCap
	if backCap < frontCap {
		limitingFactor = "back-end"
		maxPayment = backCap
	}
	maxPayment = mathutil.ClampNonNegative(maxPayment)

	maxPI := mathutil.ClampNonNegative(maxPayment - in.MonthlyTaxesIns)
	maxLoan := amortize.PrincipalForPayment(maxPI, in.RatePercent, in.Term.Months())

	return AffordabilityResult{
		MaxMonthlyPayment: mathutil.Round(maxPayment),
		MaxMonthlyPI:      mathutil.Round(maxPI),
		MaxLoanAmount:     mathutil.Round(maxLoan),
		MaxHomePrice:      mathutil.Round(maxLoan + in.DownPayment),
		LimitingFactor:    limitingFactor,
	}, nil
}
