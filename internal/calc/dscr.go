package calc

import (
	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// DSCR qualification thresholds used by investor lenders.
const (
	DSCRQualifyingRatio = 1.00
	DSCRStrongRatio     = 1.25
)

// DSCRInput holds the debt-service coverage ratio calculator inputs.
type DSCRInput struct {
	MonthlyRent     float64 `json:"monthlyRent" yaml:"monthlyRent"`
	VacancyPercent  float64 `json:"vacancyPercent,omitempty" yaml:"vacancyPercent,omitempty"`
	MonthlyExpenses float64 `json:"monthlyExpenses,omitempty" yaml:"monthlyExpenses,omitempty"` // taxes, insurance, HOA, management
	LoanAmount      float64 `json:"loanAmount" yaml:"loanAmount"`
	RatePercent     float64 `json:"ratePercent" yaml:"ratePercent"`
	Term            Term    `json:"term" yaml:"term"`
}

// DSCRResult holds the coverage metrics.
type DSCRResult struct {
	EffectiveRent     float64 `json:"effectiveRent"` // monthly, after vacancy
	NetOperatingInc   float64 `json:"netOperatingIncome"` // annual
	AnnualDebtService float64 `json:"annualDebtService"`
	MonthlyPI         float64 `json:"monthlyPI"`
	Ratio             float64 `json:"ratio"`
	Qualifies         bool    `json:"qualifies"`
	Strong            bool    `json:"strong"`
	MonthlyCashFlow   float64 `json:"monthlyCashFlow"`
}

// Validate rejects out-of-domain inputs.
func (in DSCRInput) Validate() error {
	if err := validation.Positive("monthly rent", in.MonthlyRent); err != nil {
		return err
	}
	if err := validation.PercentRange("vacancy rate", in.VacancyPercent, 100); err != nil {
		return err
	}
	if err := validation.NonNegative("monthly expenses", in.MonthlyExpenses); err != nil {
		return err
	}
	if err := validation.Positive("loan amount", in.LoanAmount); err != nil {
		return err
	}
	if err := validation.PercentRange("interest rate", in.RatePercent, 100); err != nil {
		return err
	}
	return in.Term.Validate("loan term")
}

// ComputeDSCR derives net operating income against annual debt service.
func ComputeDSCR(in DSCRInput) (DSCRResult, error) {
	if err := in.Validate(); err != nil {
		return DSCRResult{}, err
	}

	effectiveRent := in.MonthlyRent * (1 - in.VacancyPercent/constants.PercentageMultiplier)
	noi := (effectiveRent - in.MonthlyExpenses) * constants.MonthsPerYear

	monthlyPI := amortize.MonthlyPayment(in.LoanAmount, in.RatePercent, in.Term.Months())
	annualDebtService := monthlyPI * constants.MonthsPerYear

	ratio := 0.00
	if annualDebtService > 0 {
		ratio = noi / annualDebtService
	}

	return DSCRResult{
		EffectiveRent:     mathutil.Round(effectiveRent),
		NetOperatingInc:   mathutil.Round(noi),
		AnnualDebtService: mathutil.Round(annualDebtService),
		MonthlyPI:         mathutil.Round(monthlyPI),
		Ratio:             mathutil.Round(ratio),
		Qualifies:         ratio >= DSCRQualifyingRatio,
		Strong:            ratio >= DSCRStrongRatio,
		MonthlyCashFlow:   mathutil.Round(effectiveRent - in.MonthlyExpenses - monthlyPI),
	}, nil
}
