package fortress

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

var hundred = decimal.NewFromInt(100)

// ErrOutOfRange is returned for a ratio outside [0, 100] or an index outside a list.
var ErrOutOfRange = errors.New("out of range")

// summarySeparator joins the parts of an entry summary.
const summarySeparator = " | "

// Allocation is the share, in percent, of a surplus that goes to a fund.
//
// The fund is referenced by name and is not required to be registered.
type Allocation struct {
	Fund  string          `json:"fundName"`
	Ratio decimal.Decimal `json:"ratio"`
}

// Template is the live, editable split of future surplus across funds.
// Ratios are not required to sum to 100.
type Template []Allocation

// Add appends an allocation to the template.
func (t *Template) Add(fund string, ratio decimal.Decimal) error {
	fund = strings.TrimSpace(fund)
	if fund == "" {
		return ErrBlankName
	}
	if ratio.IsNegative() || ratio.GreaterThan(hundred) {
		return fmt.Errorf("ratio %s%%: %w", ratio, ErrOutOfRange)
	}
	*t = append(*t, Allocation{Fund: fund, Ratio: ratio})
	return nil
}

// Clone returns a structurally independent copy of t.
func (t Template) Clone() Template {
	if t == nil {
		return nil
	}
	c := make(Template, len(t))
	copy(c, t) // Allocation holds only values
	return c
}

// Sum returns the sum of all ratios.
func (t Template) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range t {
		sum = sum.Add(a.Ratio)
	}
	return sum
}

// Summary describes the template as "ICICI Savings (50%) | ICICI BAF (20%)",
// skipping zero ratios.
func (t Template) Summary() string {
	parts := make([]string, 0, len(t))
	for _, a := range t {
		if !a.Ratio.IsPositive() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s%%)", a.Fund, a.Ratio))
	}
	return strings.Join(parts, summarySeparator)
}

// share returns the part of total allocated with ratio.
func share(total, ratio decimal.Decimal) decimal.Decimal {
	return total.Mul(ratio).Div(hundred)
}
