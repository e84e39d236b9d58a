package calc

import (
	"github.com/delvechio-designs/mortgage-toolkit/pkg/mathutil"
)

// Payment breakdown category names as displayed to users.
const (
	CategoryPrincipalInterest = "Principal & Interest"
	CategoryPropertyTaxes     = "Property Taxes"
	CategoryHomeInsurance     = "Homeowners Insurance"
	CategoryPMI               = "PMI"
	CategoryMIP               = "MIP"
	CategoryUSDAAnnualFee     = "USDA Annual Fee"
	CategoryHOA               = "HOA"
	CategoryExtraPayment      = "Extra Payment"
	CategoryRentersInsurance  = "Renters Insurance"
)

// BreakdownItem is one category of a monthly payment.
type BreakdownItem struct {
	Category string  `json:"category"`
	Monthly  float64 `json:"monthly"`
}

// Breakdown is an ordered list of payment categories. Zero-valued categories
// are dropped at construction so displays never show empty slices.
type Breakdown []BreakdownItem

// newBreakdown keeps only the categories with a positive monthly amount,
// rounding each to cents.
func newBreakdown(items ...BreakdownItem) Breakdown {
	breakdown := make(Breakdown, 0, len(items))
	for _, item := range items {
		if mathutil.IsPositive(item.Monthly) {
			item.Monthly = mathutil.Round(item.Monthly)
			breakdown = append(breakdown, item)
		}
	}
	return breakdown
}

// Total sums all categories.
func (b Breakdown) Total() float64 {
	total := 0.00
	for _, item := range b {
		total += item.Monthly
	}
	return mathutil.Round(total)
}

// Share returns the percentage a category contributes to the total.
func (b Breakdown) Share(category string) float64 {
	total := b.Total()
	for _, item := range b {
		if item.Category == category {
			return mathutil.CalculatePercentage(item.Monthly, total)
		}
	}
	return 0
}
