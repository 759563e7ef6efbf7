// Package fortress keeps a personal ledger of surplus cash invested across a
// small set of funds, and derives wealth figures from it.
//
// The core notions are:
//   - Registry: the funds, each tagged with a Category (debt, equity,
//     commodity). Debt funds make up the emergency buffer.
//   - Template: how the next surplus is split across funds, in percent.
//   - Ledger: the logged surpluses. Each Entry keeps a frozen copy of the
//     template it was split with, later template edits never change history.
//   - Analytics: pure functions over a State (TotalWealth, CategoryWealth,
//     FundTotals, GroupHistory, NewInsights).
//   - Snapshot: the single JSON document holding a whole State, read
//     permissively so that older files keep loading.
//
// A Session applies user actions to a State and saves it through a Saver,
// typically a [github.com/etnz/fortress/store.Store].
package fortress
