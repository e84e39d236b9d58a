package calc

import (
	"fmt"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// SeventyPercentRule is the conventional flip-sizing heuristic: pay no more
// than 70% of after-repair value minus rehab.
const SeventyPercentRule = 70.0

// FixFlipInput holds the fix-and-flip calculator inputs. Financing is
// modeled as an interest-only bridge loan held for the project duration.
type FixFlipInput struct {
	PurchasePrice       float64 `json:"purchasePrice" yaml:"purchasePrice"`
	RehabCost           float64 `json:"rehabCost,omitempty" yaml:"rehabCost,omitempty"`
	AfterRepairValue    float64 `json:"afterRepairValue" yaml:"afterRepairValue"`
	HoldingMonths       int     `json:"holdingMonths" yaml:"holdingMonths"`
	MonthlyHoldingCosts float64 `json:"monthlyHoldingCosts,omitempty" yaml:"monthlyHoldingCosts,omitempty"`
	LoanAmount          float64 `json:"loanAmount,omitempty" yaml:"loanAmount,omitempty"`
	RatePercent         float64 `json:"ratePercent,omitempty" yaml:"ratePercent,omitempty"`
	SellingCostPercent  float64 `json:"sellingCostPercent,omitempty" yaml:"sellingCostPercent,omitempty"` // of ARV
}

// FixFlipResult holds the deal economics.
type FixFlipResult struct {
	FinancingCost  float64 `json:"financingCost"`
	SellingCosts   float64 `json:"sellingCosts"`
	TotalCost      float64 `json:"totalCost"`
	CashInvested   float64 `json:"cashInvested"`
	Profit         float64 `json:"profit"`
	ROIPercent     float64 `json:"roiPercent"` // on cash invested
	AnnualizedROI  float64 `json:"annualizedRoiPercent"`
	MaxOffer70Rule float64 `json:"maxOffer70Rule"`
}

// Validate rejects out-of-domain inputs.
func (in FixFlipInput) Validate() error {
	if err := validation.Positive("purchase price", in.PurchasePrice); err != nil {
		return err
	}
	if err := validation.NonNegative("rehab cost", in.RehabCost); err != nil {
		return err
	}
	if err := validation.Positive("after-repair value", in.AfterRepairValue); err != nil {
		return err
	}
	if err := validation.PositiveMonths("holding period", in.HoldingMonths); err != nil {
		return err
	}
	if err := validation.NonNegative("monthly holding costs", in.MonthlyHoldingCosts); err != nil {
		return err
	}
	if err := validation.NonNegative("loan amount", in.LoanAmount); err != nil {
		return err
	}
	if in.LoanAmount > in.PurchasePrice+in.RehabCost {
		return fmt.Errorf("loan amount exceeds purchase plus rehab")
	}
	if err := validation.PercentRange("interest rate", in.RatePercent, 100); err != nil {
		return err
	}
	return validation.PercentRange("selling costs", in.SellingCostPercent, 100)
}

// ComputeFixFlip derives profit and return on a flip, including the
// interest-only carry on borrowed funds and the 70%-rule maximum offer.
func ComputeFixFlip(in FixFlipInput) (FixFlipResult, error) {
	if err := in.Validate(); err != nil {
		return FixFlipResult{}, err
	}

	financingCost := amortize.InterestPortion(in.LoanAmount, in.RatePercent) * float64(in.HoldingMonths)
	sellingCosts := mathutil.ApplyPercentage(in.AfterRepairValue, in.SellingCostPercent)
	holdingCosts := in.MonthlyHoldingCosts * float64(in.HoldingMonths)

	totalCost := in.PurchasePrice + in.RehabCost + holdingCosts + financingCost + sellingCosts
	cashInvested := totalCost - in.LoanAmount
	profit := in.AfterRepairValue - totalCost

	roi := 0.00
	if cashInvested > 0 {
		roi = mathutil.CalculatePercentage(profit, cashInvested)
	}
	annualized := roi * float64(constants.MonthsPerYear) / float64(in.HoldingMonths)

	return FixFlipResult{
		FinancingCost:  mathutil.Round(financingCost),
		SellingCosts:   mathutil.Round(sellingCosts),
		TotalCost:      mathutil.Round(totalCost),
		CashInvested:   mathutil.Round(cashInvested),
		Profit:         mathutil.Round(profit),
		ROIPercent:     mathutil.Round(roi),
		AnnualizedROI:  mathutil.Round(annualized),
		MaxOffer70Rule: mathutil.Round(mathutil.ApplyPercentage(in.AfterRepairValue, SeventyPercentRule) - in.RehabCost),
	}, nil
}
