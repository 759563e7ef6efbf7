package fortress

import (
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		digits   string
	}{
		{"150000", "INR", "1,50,000"},
		{"12345678", "INR", "1,23,45,678"},
		{"-250000", "INR", "2,50,000"},
		{"1234.56", "INR", "1,235"},
		{"999", "INR", "999"},
		{"0", "INR", "0"},
		{"1500000", "EUR", "1,500,000"},
		{"999.4", "EUR", "999"},
		{"2500", "XYZ", "2,500"},
	}
	for _, tt := range tests {
		t.Run(tt.amount+tt.currency, func(t *testing.T) {
			got := FormatAmount(D(tt.amount), tt.currency)
			if !strings.Contains(got, tt.digits) {
				t.Errorf("FormatAmount(%s, %s) = %q, want it to contain %q", tt.amount, tt.currency, got, tt.digits)
			}
			if strings.Contains(got, ".") {
				t.Errorf("FormatAmount(%s, %s) = %q, want no fractional part", tt.amount, tt.currency, got)
			}
		})
	}
	if got := FormatAmount(D("600000"), "INR"); got != "₹6,00,000" {
		t.Errorf("FormatAmount(600000, INR) = %q, want %q", got, "₹6,00,000")
	}
	if got := FormatAmount(D("2500"), "XYZ"); got != "2,500 XYZ" {
		t.Errorf("FormatAmount(unknown currency) = %q, want %q", got, "2,500 XYZ")
	}
}
