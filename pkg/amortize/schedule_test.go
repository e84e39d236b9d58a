package amortize

import (
	"math"
	"testing"
)

func TestScheduleFullTerm(t *testing.T) {
	entries, err := Schedule(200000, 6.0, 180, Strategy{})
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if len(entries) != 180 {
		t.Fatalf("Schedule() produced %d entries, expected 180", len(entries))
	}

	if entries[0].Month != 1 {
		t.Errorf("first entry month = %d, expected 1", entries[0].Month)
	}

	// First month interest on the full principal at 6% is $1000.
	if math.Abs(entries[0].Interest-1000.0) > 0.01 {
		t.Errorf("first month interest = %.2f, expected 1000.00", entries[0].Interest)
	}

	// Balance must decrease monotonically and end at zero.
	last := math.MaxFloat64
	for _, entry := range entries {
		if entry.Balance >= last {
			t.Fatalf("balance %.2f at month %d did not decrease from %.2f",
				entry.Balance, entry.Month, last)
		}
		last = entry.Balance
	}
	if entries[len(entries)-1].Balance != 0 {
		t.Errorf("final balance = %.2f, expected 0", entries[len(entries)-1].Balance)
	}
}

func TestScheduleWithExtrasEndsEarly(t *testing.T) {
	entries, err := Schedule(200000, 6.0, 180, Strategy{ExtraMonthly: 300})
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if len(entries) >= 180 {
		t.Errorf("Schedule() with extras produced %d entries, expected fewer than 180", len(entries))
	}
	if entries[len(entries)-1].Balance != 0 {
		t.Errorf("final balance = %.2f, expected 0", entries[len(entries)-1].Balance)
	}
}

func TestScheduleFinalPaymentShrinks(t *testing.T) {
	entries, err := Schedule(100000, 5.0, 120, Strategy{ExtraMonthly: 450})
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	final := entries[len(entries)-1]
	regular := entries[0]
	if final.Payment > regular.Payment {
		t.Errorf("final payment %.2f exceeds regular payment %.2f; it should shrink to the balance",
			final.Payment, regular.Payment)
	}
}

func TestScheduleDegenerateInputs(t *testing.T) {
	if entries, err := Schedule(0, 6.0, 360, Strategy{}); err != nil || entries != nil {
		t.Errorf("Schedule(0, ...) = (%v, %v), expected (nil, nil)", entries, err)
	}
	if entries, err := Schedule(100000, 6.0, 0, Strategy{}); err != nil || entries != nil {
		t.Errorf("Schedule(..., 0) = (%v, %v), expected (nil, nil)", entries, err)
	}
}

func TestScheduleQuarterlyLumpRows(t *testing.T) {
	entries, err := Schedule(60000, 4.0, 60, Strategy{LumpSum: 1000, LumpCadence: CadenceQuarterly})
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	// Months 1, 4, 7, ... carry the lump on top of the regular payment.
	if entries[0].Payment <= entries[1].Payment {
		t.Errorf("month 1 payment %.2f should exceed month 2 payment %.2f by the lump amount",
			entries[0].Payment, entries[1].Payment)
	}
	if math.Abs((entries[0].Payment-entries[1].Payment)-1000) > 1.0 {
		t.Errorf("lump month delta = %.2f, expected ~1000",
			entries[0].Payment-entries[1].Payment)
	}
}
