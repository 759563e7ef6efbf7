package fortress

import (
	"github.com/etnz/fortress/date"
	"github.com/shopspring/decimal"
)

// Suggestions, by decreasing priority.
const (
	SuggestBuffer   = "Priority: build the emergency fortress."
	SuggestEquity   = "Increase equity to 70%."
	SuggestMaintain = "Maintain SIP momentum."
)

var (
	// HighWaterMark is the total wealth above which equity should grow.
	HighWaterMark = decimal.NewFromInt(1_000_000)
	lakh          = decimal.NewFromInt(100_000)
)

// Insights are the figures behind the strategic suggestion.
type Insights struct {
	TotalWealth     decimal.Decimal
	EmergencyWealth decimal.Decimal
	AvgMonthly      decimal.Decimal // average monthly contribution this year
	BurnRateCovered string          // emergency wealth in lakhs, one decimal
	WealthProgress  decimal.Decimal // percent of the wealth target reached
	Suggestion      string
}

// NewInsights computes the insights of s as of today.
func NewInsights(s *State, today date.Date) Insights {
	total := TotalWealth(s)
	emergency := EmergencyWealth(s)

	in := Insights{
		TotalWealth:     total,
		EmergencyWealth: emergency,
		AvgMonthly:      averageMonthly(s, today),
		BurnRateCovered: emergency.Div(lakh).StringFixed(1),
		WealthProgress:  decimal.Zero,
	}
	if s.Settings.WealthTarget.IsPositive() {
		in.WealthProgress = total.Mul(hundred).Div(s.Settings.WealthTarget).Round(1)
	}

	switch {
	case emergency.LessThan(s.Settings.EmergencyTarget):
		in.Suggestion = SuggestBuffer
	case total.GreaterThan(HighWaterMark):
		in.Suggestion = SuggestEquity
	default:
		in.Suggestion = SuggestMaintain
	}
	return in
}

// averageMonthly divides this year's contributions by the number of months
// elapsed, the current one included.
func averageMonthly(s *State, today date.Date) decimal.Decimal {
	sum, n := decimal.Zero, 0
	for _, e := range s.History {
		if e.When().Year() != today.Year() {
			continue
		}
		sum = sum.Add(e.Total)
		n++
	}
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(today.Month())))
}
