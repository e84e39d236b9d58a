// Package output provides utilities for formatting and displaying
// calculator results.
package output

import (
	"fmt"

	"github.com/delvechio-designs/mortgage-toolkit/internal/calc"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/amortize"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/format"
)

// Row is one labeled figure in a report.
type Row struct {
	Label string
	Value string
}

// Report is a rendered calculator run: a titled list of figures plus an
// optional amortization table.
type Report struct {
	Title    string
	Rows     []Row
	Schedule []amortize.Entry
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(report Report) {
	fmt.Printf("--- %s ---\n", report.Title)

	width := 0
	for _, row := range report.Rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}
	for _, row := range report.Rows {
		fmt.Printf("%-*s | %s\n", width, row.Label, row.Value)
	}

	if len(report.Schedule) > 0 {
		fmt.Printf("\nMonth | Payment      | Principal    | Interest     | Balance\n")
		fmt.Printf("_____ | _______      | _________    | ________     | _______\n")
		for _, entry := range report.Schedule {
			fmt.Printf("%5d | %12s | %12s | %12s | %s\n",
				entry.Month,
				format.Currency(entry.Payment),
				format.Currency(entry.Principal),
				format.Currency(entry.Interest),
				format.Currency(entry.Balance),
			)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(report Report) {
	if len(report.Rows) > 0 {
		fmt.Printf("\"field\",\"value\"\n")
		for _, row := range report.Rows {
			fmt.Printf("%q,%q\n", row.Label, row.Value)
		}
	}

	if len(report.Schedule) > 0 {
		fmt.Printf("\"month\",\"payment\",\"principal\",\"interest\",\"balance\"\n")
		for _, entry := range report.Schedule {
			fmt.Printf("\"%d\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
				entry.Month, entry.Payment, entry.Principal, entry.Interest, entry.Balance)
		}
	}
}

// ForResult builds the report for a calculator result.
func ForResult(title string, result any) Report {
	report := Report{Title: title}

	switch r := result.(type) {
	case calc.PurchaseResult:
		report.Rows = purchaseRows(r)
	case calc.VAPurchaseResult:
		report.Rows = vaPurchaseRows(r)
	case calc.RefinanceResult:
		report.Rows = refinanceRows(r)
	case calc.VARefinanceResult:
		report.Rows = vaRefinanceRows(r)
	case calc.AffordabilityResult:
		report.Rows = []Row{
			{"Max monthly payment", format.Currency(r.MaxMonthlyPayment)},
			{"Max principal & interest", format.Currency(r.MaxMonthlyPI)},
			{"Max loan amount", format.Currency(r.MaxLoanAmount)},
			{"Max home price", format.Currency(r.MaxHomePrice)},
			{"Limiting factor", r.LimitingFactor + " ratio"},
		}
	case calc.RentVsBuyResult:
		report.Rows = rentVsBuyRows(r)
	case calc.DSCRResult:
		report.Rows = dscrRows(r)
	case calc.FixFlipResult:
		report.Rows = fixFlipRows(r)
	case calc.PayoffResult:
		report.Rows = payoffRows(r)
	case []amortize.Entry:
		report.Schedule = r
	}

	return report
}

func purchaseRows(r calc.PurchaseResult) []Row {
	rows := []Row{
		{"Loan amount", format.Currency(r.LoanAmount)},
		{"Down payment", format.Currency(r.DownPaymentAmount)},
		{"Loan-to-value", format.Percent(r.LTVPercent)},
		{"Monthly principal & interest", format.Currency(r.MonthlyPI)},
	}
	for _, item := range r.Breakdown {
		if item.Category == calc.CategoryPrincipalInterest {
			continue
		}
		rows = append(rows, Row{item.Category, format.Currency(item.Monthly)})
	}
	rows = append(rows,
		Row{"Total monthly payment", format.Currency(r.TotalMonthly)},
		Row{"Total interest", format.Currency(r.TotalInterest)},
	)
	return append(rows, payoffSavingsRows(r.Payoff)...)
}

func vaPurchaseRows(r calc.VAPurchaseResult) []Row {
	rows := []Row{
		{"Funding fee", fmt.Sprintf("%s (%s)", format.Currency(r.FundingFeeAmount), format.Percent(r.FundingFeePercent))},
		{"Loan amount", format.Currency(r.LoanAmount)},
		{"Monthly principal & interest", format.Currency(r.MonthlyPI)},
	}
	for _, item := range r.Breakdown {
		if item.Category == calc.CategoryPrincipalInterest {
			continue
		}
		rows = append(rows, Row{item.Category, format.Currency(item.Monthly)})
	}
	rows = append(rows,
		Row{"Total monthly payment", format.Currency(r.TotalMonthly)},
		Row{"Total interest", format.Currency(r.TotalInterest)},
	)
	return append(rows, payoffSavingsRows(r.Payoff)...)
}

func refinanceRows(r calc.RefinanceResult) []Row {
	rows := []Row{
		{"New loan amount", format.Currency(r.NewLoanAmount)},
		{"New monthly principal & interest", format.Currency(r.NewMonthlyPI)},
		{"Monthly savings", format.Currency(r.MonthlySavings)},
	}
	if r.Recoups {
		if r.BreakEvenMonths > 0 {
			rows = append(rows, Row{"Break-even point", format.Term(r.BreakEvenMonths)})
		}
	} else {
		rows = append(rows, Row{"Break-even point", "never (payment increases)"})
	}
	return append(rows,
		Row{"New total interest", format.Currency(r.NewTotalInterest)},
		Row{"Remaining interest on current loan", format.Currency(r.RemainingInterest)},
		Row{"Lifetime difference", format.Currency(r.LifetimeDifference)},
	)
}

func vaRefinanceRows(r calc.VARefinanceResult) []Row {
	rows := []Row{
		{"Funding fee", fmt.Sprintf("%s (%s)", format.Currency(r.FundingFeeAmount), format.Percent(r.FundingFeePercent))},
		{"New loan amount", format.Currency(r.NewLoanAmount)},
		{"New monthly principal & interest", format.Currency(r.NewMonthlyPI)},
		{"Monthly savings", format.Currency(r.MonthlySavings)},
	}
	if r.Recoups {
		if r.BreakEvenMonths > 0 {
			rows = append(rows, Row{"Break-even point", format.Term(r.BreakEvenMonths)})
		}
	} else {
		rows = append(rows, Row{"Break-even point", "never (payment increases)"})
	}
	return append(rows, Row{"New total interest", format.Currency(r.NewTotalInterest)})
}

func rentVsBuyRows(r calc.RentVsBuyResult) []Row {
	rows := []Row{
		{"Total rent cost", format.Currency(r.TotalRentCost)},
		{"Total ownership outlays", format.Currency(r.TotalOwnCost)},
		{"Equity built", format.Currency(r.EquityBuilt)},
		{"Net ownership cost", format.Currency(r.NetOwnCost)},
		{"Future home value", format.Currency(r.FutureHomeValue)},
		{"Remaining balance", format.Currency(r.RemainingBalance)},
		{"Verdict", r.Verdict},
	}
	if r.CrossoverMonth > 0 {
		rows = append(rows, Row{"Buying wins after", format.Term(r.CrossoverMonth)})
	}
	return rows
}

func dscrRows(r calc.DSCRResult) []Row {
	qualifies := "no"
	if r.Qualifies {
		qualifies = "yes"
		if r.Strong {
			qualifies = "yes (strong)"
		}
	}
	return []Row{
		{"Effective monthly rent", format.Currency(r.EffectiveRent)},
		{"Net operating income (annual)", format.Currency(r.NetOperatingInc)},
		{"Annual debt service", format.Currency(r.AnnualDebtService)},
		{"DSCR", fmt.Sprintf("%.2f", r.Ratio)},
		{"Qualifies", qualifies},
		{"Monthly cash flow", format.Currency(r.MonthlyCashFlow)},
	}
}

func fixFlipRows(r calc.FixFlipResult) []Row {
	return []Row{
		{"Financing cost", format.Currency(r.FinancingCost)},
		{"Selling costs", format.Currency(r.SellingCosts)},
		{"Total cost", format.Currency(r.TotalCost)},
		{"Cash invested", format.Currency(r.CashInvested)},
		{"Profit", format.Currency(r.Profit)},
		{"Return on cash", format.Percent(r.ROIPercent)},
		{"Annualized return", format.Percent(r.AnnualizedROI)},
		{"Max offer (70% rule)", format.Currency(r.MaxOffer70Rule)},
	}
}

func payoffRows(r calc.PayoffResult) []Row {
	rows := []Row{
		{"Base monthly payment", format.Currency(r.BasePayment)},
		{"Baseline payoff", format.Term(r.Savings.Baseline.MonthsToPayoff)},
		{"Baseline interest", format.Currency(r.Savings.Baseline.TotalInterest)},
		{"Accelerated payoff", format.Term(r.Savings.WithExtras.MonthsToPayoff)},
		{"Accelerated interest", format.Currency(r.Savings.WithExtras.TotalInterest)},
	}
	if r.Savings.MonthsSaved > 0 {
		rows = append(rows, Row{"Time saved", format.Term(r.Savings.MonthsSaved)})
	}
	rows = append(rows, Row{"Interest saved", format.Currency(r.Savings.InterestSaved)})
	return rows
}

func payoffSavingsRows(s *amortize.Savings) []Row {
	if s == nil {
		return nil
	}
	return []Row{
		{"Payoff with extras", format.Term(s.WithExtras.MonthsToPayoff)},
		{"Time saved", format.Term(s.MonthsSaved)},
		{"Interest saved", format.Currency(s.InterestSaved)},
	}
}
