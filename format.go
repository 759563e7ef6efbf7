package fortress

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency amounts are shown in unless configured otherwise.
const DefaultCurrency = money.INR

// FormatAmount formats d rounded to a whole amount of currency, e.g.
// "₹1,50,000". Rupees are grouped in lakhs and crores, other currencies in
// thousands.
func FormatAmount(d decimal.Decimal, currency string) string {
	c := money.GetCurrency(currency)
	if c == nil {
		// unknown codes are printed as a suffix.
		c = &money.Currency{Code: currency, Grapheme: currency, Template: "1 $", Decimal: ".", Thousand: ","}
	}
	if c.Code != money.INR {
		f := money.NewFormatter(0, c.Decimal, c.Thousand, c.Grapheme, c.Template)
		return f.Format(d.Round(0).IntPart())
	}
	f := money.NewFormatter(0, c.Decimal, "", c.Grapheme, c.Template)
	return groupLakhs(f.Format(d.Round(0).IntPart()), c.Thousand)
}

// groupLakhs separates the digits of s the Indian way: the last three
// digits, then groups of two.
func groupLakhs(s, sep string) string {
	start := strings.IndexAny(s, "0123456789")
	if start < 0 {
		return s
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	digits := s[start:end]
	if len(digits) <= 3 {
		return s
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	for i := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(head[i])
	}
	b.WriteString(sep)
	b.WriteString(tail)
	return s[:start] + b.String() + s[end:]
}
