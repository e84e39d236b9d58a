package amortize

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termMonths        int
		expected          float64
		tolerance         float64
	}{
		{
			name:              "Standard 30-year fixed at 7.5%",
			principal:         450000,
			annualRatePercent: 7.5,
			termMonths:        360,
			expected:          3146.43,
			tolerance:         0.50,
		},
		{
			name:              "Zero-rate straight line",
			principal:         100000,
			annualRatePercent: 0,
			termMonths:        120,
			expected:          833.33,
			tolerance:         0.01,
		},
		{
			name:              "15-year at 6%",
			principal:         240000,
			annualRatePercent: 6.0,
			termMonths:        180,
			expected:          2025.26,
			tolerance:         0.50,
		},
		{
			name:              "Zero principal",
			principal:         0,
			annualRatePercent: 6.0,
			termMonths:        360,
			expected:          0,
			tolerance:         0,
		},
		{
			name:              "Zero term",
			principal:         100000,
			annualRatePercent: 6.0,
			termMonths:        0,
			expected:          0,
			tolerance:         0,
		},
		{
			name:              "Negative term",
			principal:         100000,
			annualRatePercent: 6.0,
			termMonths:        -12,
			expected:          0,
			tolerance:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.principal, tt.annualRatePercent, tt.termMonths)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("MonthlyPayment() = %.2f, expected %.2f ± %.2f",
					result, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestMonthlyPaymentZeroRateExact(t *testing.T) {
	// Straight-line division must hold exactly for any zero-rate loan.
	cases := []struct {
		principal  float64
		termMonths int
	}{
		{120000, 120},
		{5000, 12},
		{987654.32, 84},
	}

	for _, tc := range cases {
		got := MonthlyPayment(tc.principal, 0, tc.termMonths)
		want := tc.principal / float64(tc.termMonths)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("MonthlyPayment(%v, 0, %d) = %v, expected %v",
				tc.principal, tc.termMonths, got, want)
		}
	}
}

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRate    float64
		termMonths    int
		monthsElapsed int
		expectZero    bool
	}{
		{
			name:          "Full term amortizes to zero",
			principal:     300000,
			annualRate:    5.0,
			termMonths:    360,
			monthsElapsed: 360,
			expectZero:    true,
		},
		{
			name:          "Half term leaves balance",
			principal:     300000,
			annualRate:    5.0,
			termMonths:    360,
			monthsElapsed: 180,
			expectZero:    false,
		},
		{
			name:          "Zero rate full term",
			principal:     120000,
			annualRate:    0,
			termMonths:    120,
			monthsElapsed: 120,
			expectZero:    true,
		},
		{
			name:          "Short 15-year at 6.5% matures",
			principal:     200000,
			annualRate:    6.5,
			termMonths:    180,
			monthsElapsed: 180,
			expectZero:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := MonthlyPayment(tt.principal, tt.annualRate, tt.termMonths)
			rate := MonthlyRate(tt.annualRate)
			balance := RemainingBalance(tt.principal, rate, payment, tt.monthsElapsed)

			if tt.expectZero {
				if math.Abs(balance) > 0.01 {
					t.Errorf("RemainingBalance() = %.4f, expected ~0 after full term", balance)
				}
			} else {
				if balance <= 0 || balance >= tt.principal {
					t.Errorf("RemainingBalance() = %.2f, expected between 0 and %.2f",
						balance, tt.principal)
				}
			}
		})
	}
}

func TestRemainingBalanceClampsAtZero(t *testing.T) {
	// Overpaying past the term must clamp rather than go negative.
	payment := MonthlyPayment(100000, 4.0, 120)
	balance := RemainingBalance(100000, MonthlyRate(4.0), payment, 240)
	if balance != 0 {
		t.Errorf("RemainingBalance() after double term = %.2f, expected 0", balance)
	}

	if got := RemainingBalance(50000, 0, 1000, 100); got != 0 {
		t.Errorf("zero-rate overpayment balance = %.2f, expected 0", got)
	}
}

func TestRemainingBalanceEdgeCases(t *testing.T) {
	if got := RemainingBalance(0, 0.005, 1000, 12); got != 0 {
		t.Errorf("zero principal balance = %.2f, expected 0", got)
	}
	if got := RemainingBalance(100000, 0.005, 1000, 0); got != 100000 {
		t.Errorf("zero months elapsed balance = %.2f, expected principal", got)
	}
}

func TestTotalInterest(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		termMonths int
	}{
		{"30-year at 7.5%", 450000, 7.5, 360},
		{"15-year at 6%", 240000, 6.0, 180},
		{"Zero rate", 120000, 0, 120},
		{"Short personal loan", 15000, 9.0, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalInterest(tt.principal, tt.annualRate, tt.termMonths)

			// Interest identity: payment * n - principal.
			want := MonthlyPayment(tt.principal, tt.annualRate, tt.termMonths)*float64(tt.termMonths) - tt.principal
			if math.Abs(got-want) > 0.01 {
				t.Errorf("TotalInterest() = %.2f, expected identity value %.2f", got, want)
			}

			if tt.annualRate == 0 && math.Abs(got) > 0.01 {
				t.Errorf("TotalInterest() = %.2f for zero-rate loan, expected 0", got)
			}
			if tt.annualRate > 0 && got <= 0 {
				t.Errorf("TotalInterest() = %.2f, expected positive interest", got)
			}
		})
	}
}

func TestTotalInterestDegenerateInputs(t *testing.T) {
	if got := TotalInterest(0, 6.0, 360); got != 0 {
		t.Errorf("TotalInterest with zero principal = %.2f, expected 0", got)
	}
	if got := TotalInterest(100000, 6.0, 0); got != 0 {
		t.Errorf("TotalInterest with zero term = %.2f, expected 0", got)
	}
}

func TestPrincipalForPayment(t *testing.T) {
	// Round trip: the principal recoverable from a payment must reproduce it.
	cases := []struct {
		name       string
		principal  float64
		annualRate float64
		termMonths int
	}{
		{"30-year at 7.5%", 450000, 7.5, 360},
		{"15-year at 6%", 240000, 6.0, 180},
		{"Zero rate", 120000, 0, 120},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payment := MonthlyPayment(tc.principal, tc.annualRate, tc.termMonths)
			got := PrincipalForPayment(payment, tc.annualRate, tc.termMonths)
			if math.Abs(got-tc.principal) > 0.01 {
				t.Errorf("PrincipalForPayment() = %.2f, expected %.2f", got, tc.principal)
			}
		})
	}

	if got := PrincipalForPayment(0, 6.0, 360); got != 0 {
		t.Errorf("PrincipalForPayment(0, ...) = %.2f, expected 0", got)
	}
	if got := PrincipalForPayment(1000, 6.0, 0); got != 0 {
		t.Errorf("PrincipalForPayment(..., 0) = %.2f, expected 0", got)
	}
}

func TestInterestPortion(t *testing.T) {
	tests := []struct {
		name               string
		remainingPrincipal float64
		annualRatePercent  float64
		expected           float64
	}{
		{"Standard mortgage interest", 200000, 6.0, 1000.0},
		{"Small balance", 100, 6.0, 0.5},
		{"Zero rate", 10000, 0, 0},
		{"High rate", 5000, 24.0, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InterestPortion(tt.remainingPrincipal, tt.annualRatePercent)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("InterestPortion() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}
