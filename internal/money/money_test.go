package money

import (
	"math"
	"testing"
)

func TestFormatterUSLocale(t *testing.T) {
	f := NewFormatter("en-US", "$")
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{25, "$25.00"},
		{35.5, "$35.50"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{math.NaN(), "$0.00"},
		{math.Inf(1), "$0.00"},
		{-10, "$0.00"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatterGermanGrouping(t *testing.T) {
	f := NewFormatter("de-DE", "€")
	if got := f.Format(1234.5); got != "€1.234,50" {
		t.Fatalf("Format(1234.5) = %q, want %q", got, "€1.234,50")
	}
}

func TestFormatterBadLocaleFallsBack(t *testing.T) {
	f := NewFormatter("no-such-locale!!", "")
	if got := f.Format(10); got != "$10.00" {
		t.Fatalf("Format(10) = %q, want $10.00", got)
	}
}
