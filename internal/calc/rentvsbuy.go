package calc

import (
	"fmt"
	"math"

	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// RentVsBuyInput holds the rent-versus-buy comparison inputs.
type RentVsBuyInput struct {
	MonthlyRent            float64         `json:"monthlyRent" yaml:"monthlyRent"`
	RentIncreasePercent    float64         `json:"rentIncreasePercent,omitempty" yaml:"rentIncreasePercent,omitempty"` // annual
	RentersInsuranceAnnual float64         `json:"rentersInsuranceAnnual,omitempty" yaml:"rentersInsuranceAnnual,omitempty"`
	HomePrice              float64         `json:"homePrice" yaml:"homePrice"`
	DownPayment            AmountOrPercent `json:"downPayment" yaml:"downPayment"`
	RatePercent            float64         `json:"ratePercent" yaml:"ratePercent"`
	Term                   Term            `json:"term" yaml:"term"`
	PropertyTaxPercent     float64         `json:"propertyTaxPercent,omitempty" yaml:"propertyTaxPercent,omitempty"` // annual, of price
	MaintenancePercent     float64         `json:"maintenancePercent,omitempty" yaml:"maintenancePercent,omitempty"` // annual, of price
	HomeInsuranceAnnual    float64         `json:"homeInsuranceAnnual,omitempty" yaml:"homeInsuranceAnnual,omitempty"`
	HOAMonthly             float64         `json:"hoaMonthly,omitempty" yaml:"hoaMonthly,omitempty"`
	ClosingCostPercent     float64         `json:"closingCostPercent,omitempty" yaml:"closingCostPercent,omitempty"`
	AppreciationPercent    float64         `json:"appreciationPercent,omitempty" yaml:"appreciationPercent,omitempty"` // annual
	HorizonYears           int             `json:"horizonYears" yaml:"horizonYears"`
}

// RentVsBuyResult compares the two paths over the horizon.
type RentVsBuyResult struct {
	TotalRentCost    float64 `json:"totalRentCost"`
	TotalOwnCost     float64 `json:"totalOwnCost"` // cash outlays including closing
	EquityBuilt      float64 `json:"equityBuilt"`
	NetOwnCost       float64 `json:"netOwnCost"` // outlays minus equity
	Verdict          string  `json:"verdict"`    // "buy" or "rent"
	CrossoverMonth   int     `json:"crossoverMonth,omitempty"`
	FutureHomeValue  float64 `json:"futureHomeValue"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// Validate rejects out-of-domain inputs.
func (in RentVsBuyInput) Validate() error {
	if err := validation.Positive("monthly rent", in.MonthlyRent); err != nil {
		return err
	}
	if err := validation.PercentRange("rent increase", in.RentIncreasePercent, 100); err != nil {
		return err
	}
	if err := validation.NonNegative("renters insurance", in.RentersInsuranceAnnual); err != nil {
		return err
	}
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
	for _, pct := range []struct {
		name  string
		value float64
	}{
		{"property tax", in.PropertyTaxPercent},
		{"maintenance", in.MaintenancePercent},
		{"closing costs", in.ClosingCostPercent},
		{"appreciation", in.AppreciationPercent},
	} {
		if err := validation.PercentRange(pct.name, pct.value, 100); err != nil {
			return err
		}
	}
	if err := validation.NonNegative("home insurance", in.HomeInsuranceAnnual); err != nil {
		return err
	}
	if err := validation.NonNegative("HOA dues", in.HOAMonthly); err != nil {
		return err
	}
	if in.HorizonYears <= 0 {
		return validation.PositiveMonths("comparison horizon", 0)
	}
	if in.DownPayment.Resolve(in.HomePrice) > in.HomePrice {
		return fmt.Errorf("down payment exceeds home price")
	}
	return nil
}

// ComputeRentVsBuy walks the horizon month by month, accruing rent on one
// side and ownership outlays minus equity on the other. Equity comes from
// principal paydown plus appreciation.
func ComputeRentVsBuy(in RentVsBuyInput) (RentVsBuyResult, error) {
	if err := in.Validate(); err != nil {
		return RentVsBuyResult{}, err
	}

	downPayment := in.DownPayment.Resolve(in.HomePrice)
	loanAmount := in.HomePrice - downPayment
	termMonths := in.Term.Months()
	monthlyPI := amortize.MonthlyPayment(loanAmount, in.RatePercent, termMonths)
	monthlyRate := amortize.MonthlyRate(in.RatePercent)

	ownFixedMonthly := mathutil.ApplyPercentage(in.HomePrice, in.PropertyTaxPercent)/constants.MonthsPerYear +
		mathutil.ApplyPercentage(in.HomePrice, in.MaintenancePercent)/constants.MonthsPerYear +
		in.HomeInsuranceAnnual/constants.MonthsPerYear +
		in.HOAMonthly

	closingCosts := mathutil.ApplyPercentage(in.HomePrice, in.ClosingCostPercent)
	horizonMonths := in.HorizonYears * constants.MonthsPerYear
	monthlyAppreciation := math.Pow(1+in.AppreciationPercent/constants.PercentageMultiplier,
		1.0/constants.MonthsPerYear) - 1

	rent := in.MonthlyRent
	rentCumulative := 0.00
	ownOutlays := downPayment + closingCosts
	homeValue := in.HomePrice
	crossover := 0

	for month := 1; month <= horizonMonths; month++ {
		rentCumulative += rent + in.RentersInsuranceAnnual/constants.MonthsPerYear
		if month%constants.MonthsPerYear == 0 {
			rent *= 1 + in.RentIncreasePercent/constants.PercentageMultiplier
		}

		payment := monthlyPI
		if month > termMonths {
			payment = 0
		}
		ownOutlays += payment + ownFixedMonthly
		homeValue *= 1 + monthlyAppreciation

		// crossover is the first month owning nets out cheaper than renting
		if crossover == 0 {
			balance := amortize.RemainingBalance(loanAmount, monthlyRate, monthlyPI, min(month, termMonths))
			netOwn := ownOutlays - (homeValue - balance)
			if netOwn < rentCumulative {
				crossover = month
			}
		}
	}

	finalBalance := amortize.RemainingBalance(loanAmount, monthlyRate, monthlyPI, min(horizonMonths, termMonths))
	equity := homeValue - finalBalance
	netOwnCost := ownOutlays - equity

	verdict := "rent"
	if netOwnCost < rentCumulative {
		verdict = "buy"
	}

	return RentVsBuyResult{
		TotalRentCost:    mathutil.Round(rentCumulative),
		TotalOwnCost:     mathutil.Round(ownOutlays),
		EquityBuilt:      mathutil.Round(equity),
		NetOwnCost:       mathutil.Round(netOwnCost),
		Verdict:          verdict,
		CrossoverMonth:   crossover,
		FutureHomeValue:  mathutil.Round(homeValue),
		RemainingBalance: mathutil.Round(finalBalance),
	}, nil
}
