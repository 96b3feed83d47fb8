package rebalance

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(100, "CAD"), "$100.00"},
		{M(dec("1234.5"), "CAD"), "$1,234.50"},
		{M(dec("-42.1"), "CAD"), "-$42.10"},
		{M(0, "CAD"), "$0.00"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(100, "CAD"), "+$100.00"},
		{M(dec("-42.1"), "CAD"), "-$42.10"},
		{M(0, "CAD"), "-"},
	}
	for _, tt := range tests {
		if got := tt.m.SignedString(); got != tt.want {
			t.Errorf("SignedString() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneyAdd(t *testing.T) {
	// the zero Money is a neutral element whatever the other currency.
	var total Money
	total = total.Add(M(100, "CAD"))
	total = total.Add(M(dec("5.5"), "CAD"))
	if got := total.String(); got != "$105.50" {
		t.Errorf("Add() = %q, want $105.50", got)
	}
	if total.Currency() != "CAD" {
		t.Errorf("Currency() = %q, want CAD", total.Currency())
	}
}

func TestMoneyAddMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add() with mixed currencies: expected a panic")
		}
	}()
	M(1, "CAD").Add(M(1, "USD"))
}
