package fortress

import "github.com/shopspring/decimal"

// Settings holds the user thresholds used by the insights.
type Settings struct {
	EmergencyTarget decimal.Decimal `json:"emergencyTarget"`
	WealthTarget    decimal.Decimal `json:"wealthTarget"`
}

// DefaultSettings returns the settings of a new ledger: a six lakh emergency
// buffer and a fifty lakh wealth target.
func DefaultSettings() Settings {
	return Settings{
		EmergencyTarget: decimal.NewFromInt(600_000),
		WealthTarget:    decimal.NewFromInt(5_000_000),
	}
}

// State is everything a session works on and everything a snapshot holds.
type State struct {
	History     Ledger
	Todos       Todos
	Funds       Registry
	Allocations Template
	Settings    Settings
}

// NewState returns the state of a fresh install: a starter registry and
// template, no history.
func NewState(settings Settings) *State {
	return &State{
		History: Ledger{},
		Todos:   Todos{},
		Funds: Registry{
			{Name: "ICICI Savings", Category: Debt},
			{Name: "Axis Short Duration", Category: Debt},
			{Name: "ICICI BAF", Category: Equity},
			{Name: "UTI Nifty 50 Index", Category: Equity},
			{Name: "SBI Gold Fund", Category: Commodity},
		},
		Allocations: Template{
			{Fund: "ICICI Savings", Ratio: decimal.NewFromInt(50)},
			{Fund: "Axis Short Duration", Ratio: decimal.NewFromInt(30)},
			{Fund: "ICICI BAF", Ratio: decimal.NewFromInt(20)},
		},
		Settings: settings,
	}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{
		History:     s.History.Clone(),
		Todos:       s.Todos.Clone(),
		Funds:       s.Funds.Clone(),
		Allocations: s.Allocations.Clone(),
		Settings:    s.Settings,
	}
}
