package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 12.5, "$12.50"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
		{"Rounds to cents", 3146.427, "$3,146.43"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Positive", 98765.432, "98,765.43"},
		{"Negative", -450.1, "-450.10"},
		{"Zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericCurrency(tt.amount); got != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(7.5); got != "7.50%" {
		t.Errorf("Percent(7.5) = %q, expected 7.50%%", got)
	}
	if got := Percent(0); got != "0.00%" {
		t.Errorf("Percent(0) = %q, expected 0.00%%", got)
	}
}

func TestTerm(t *testing.T) {
	tests := []struct {
		name     string
		months   int
		expected string
	}{
		{"Whole years", 360, "30 years"},
		{"Years and months", 304, "25 years 4 months"},
		{"Under a year", 7, "7 months"},
		{"Zero", 0, "0 months"},
		{"Negative clamps", -5, "0 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Term(tt.months); got != tt.expected {
				t.Errorf("Term(%d) = %q, expected %q", tt.months, got, tt.expected)
			}
		})
	}
}
