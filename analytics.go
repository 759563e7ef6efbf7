package fortress

import "github.com/shopspring/decimal"

// The analytics are pure functions of a State: they never modify it and can
// be recomputed at will.

// TotalWealth returns the sum of all logged surpluses.
func TotalWealth(s *State) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.History {
		sum = sum.Add(e.Total)
	}
	return sum
}

// CategoryWealth returns the part of the history allocated to funds of
// category c.
//
// Funds are resolved against the current registry, not against the registry
// at logging time: reclassifying a fund reclassifies its whole history, and
// allocations to funds no longer registered count for no category.
func CategoryWealth(s *State, c Category) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.History {
		for _, a := range e.Detail {
			fund, ok := s.Funds.Lookup(a.Fund)
			if !ok || fund.Category != c {
				continue
			}
			sum = sum.Add(share(e.Total, a.Ratio))
		}
	}
	return sum
}

// EmergencyWealth returns the wealth held in debt funds.
func EmergencyWealth(s *State) decimal.Decimal { return CategoryWealth(s, Debt) }

// FundTotals returns the lifetime contribution to every registered fund.
//
// Every registered fund is present, with zero when it never received
// anything. Contributions to unregistered funds are dropped.
func FundTotals(s *State) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(s.Funds))
	for _, f := range s.Funds {
		totals[f.Name] = decimal.Zero
	}
	for _, e := range s.History {
		for _, a := range e.Detail {
			if sum, ok := totals[a.Fund]; ok {
				totals[a.Fund] = sum.Add(share(e.Total, a.Ratio))
			}
		}
	}
	return totals
}

// Contribution is the amount an entry allocated to one fund.
type Contribution struct {
	Fund   string
	Ratio  decimal.Decimal
	Amount decimal.Decimal
}

// Contributions splits an entry total according to its frozen detail.
func Contributions(e Entry) []Contribution {
	cs := make([]Contribution, 0, len(e.Detail))
	for _, a := range e.Detail {
		cs = append(cs, Contribution{Fund: a.Fund, Ratio: a.Ratio, Amount: share(e.Total, a.Ratio)})
	}
	return cs
}
