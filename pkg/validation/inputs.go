package validation

import (
	"fmt"
	"math"
)

// Calculator inputs are rejected at the boundary rather than silently
// clamped; the calculation core stays total but callers never feed it
// negative or non-finite values.

// Finite checks that a value is a usable number.
func Finite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	return nil
}

// NonNegative checks that a value is finite and >= 0.
func NonNegative(name string, value float64) error {
	if err := Finite(name, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%s must not be negative, got %.2f", name, value)
	}
	return nil
}

// Positive checks that a value is finite and > 0.
func Positive(name string, value float64) error {
	if err := Finite(name, value); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %.2f", name, value)
	}
	return nil
}

// PositiveMonths checks that a term is a positive number of months.
func PositiveMonths(name string, months int) error {
	if months <= 0 {
		return fmt.Errorf("%s must be a positive number of months, got %d", name, months)
	}
	return nil
}

// PercentRange checks that a percentage lies within [0, max].
func PercentRange(name string, value, max float64) error {
	if err := NonNegative(name, value); err != nil {
		return err
	}
	if value > max {
		return fmt.Errorf("%s must not exceed %.2f%%, got %.2f%%", name, max, value)
	}
	return nil
}
