package dashboard

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{12.5, "12.50"},
		{1800, "1,800.00"},
		{1234567.891, "1,234,567.89"},
		{-1234.5, "-1,234.50"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSignedPercent(t *testing.T) {
	negZero := math.Copysign(0, -1)
	if got := signedPercent(negZero); got != "+0.00%" {
		t.Errorf("negative zero = %q", got)
	}
	if got := signedPercent(3.14159); got != "+3.14%" {
		t.Errorf("got %q", got)
	}
	if got := signedPercent(-0.5); got != "-0.50%" {
		t.Errorf("got %q", got)
	}
}

func TestFormatCurrencyRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.125, "1,234.13"},
		{-2.625, "-2.63"},
		{0.375, "0.38"},
		{1000.875, "1,000.88"},
		{1.005, "1.01"},
		{-0.004, "-0.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFixedRoundsExactTiesAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		prec int
		want string
	}{
		{14.125, 2, "14.13"},
		{-14.125, 2, "-14.13"},
		{12.5, 0, "13"},
		{-12.5, 0, "-13"},
		{0.5, 0, "1"},
		{1.005, 2, "1.00"}, // stored just below the tie
		{-0.004, 2, "-0.00"},
		{0.05123, 4, "0.0512"},
	}
	for _, tt := range tests {
		if got := fixed(tt.in, tt.prec); got != tt.want {
			t.Errorf("fixed(%v, %d) = %q, want %q", tt.in, tt.prec, got, tt.want)
		}
	}
	if got := signedPercent(0.125); got != "+0.13%" {
		t.Errorf("signedPercent(0.125) = %q", got)
	}
	if got := signedPercent(-0.125); got != "-0.13%" {
		t.Errorf("signedPercent(-0.125) = %q", got)
	}
}
