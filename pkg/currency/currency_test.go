package currency_test

import (
	"testing"

	"deal-tracker/pkg/currency"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,250,000", 1250000, true},
		{"1250000", 1250000, true},
		{"12.5%", 12.5, true},
		{"-$4,000.25", -4000.25, true},
		{"  $ 99 ", 99, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"1.2.3", 1.2, true},
		{"1.5.3", 1.5, true},
		{"12-5", 12, true},
		{"$.75", 0.75, true},
		{"7.", 7, true},
		{"--3", 0, false},
		{"-", 0, false},
		{"...", 0, false},
	}

	for _, tc := range cases {
		got, ok := currency.Parse(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := map[float64]string{
		0:          "$0.00",
		5:          "$5.00",
		999.5:      "$999.50",
		1000:       "$1,000.00",
		1234567.89: "$1,234,567.89",
		-2500:      "-$2,500.00",
	}

	for in, want := range cases {
		if got := currency.Format(in); got != want {
			t.Errorf("Format(%v) = %q, want %q", in, got, want)
		}
	}
}
