package renderer

import (
	"github.com/etnz/fortress"
	"github.com/etnz/fortress/date"
	"github.com/shopspring/decimal"
)

// History is the data of the history view.
type History struct {
	fortress.Page
	Next int // page number that loads more groups
}

// NewHistory builds the history view of s showing the given page, pages are
// numbered from 1.
func NewHistory(s *fortress.State, page int) *History {
	if page < 1 {
		page = 1
	}
	limit := fortress.DefaultPageSize + (page-1)*fortress.PageStep
	return &History{
		Page: fortress.Paginate(fortress.GroupHistory(s), limit),
		Next: page + 1,
	}
}

// Summary is the data of the dashboard view.
type Summary struct {
	Date     date.Date
	Status   string
	Entries  int
	Settings fortress.Settings
	fortress.Insights
}

// NewSummary builds the dashboard of s as of today.
func NewSummary(s *fortress.State, today date.Date, status string) *Summary {
	return &Summary{
		Date:     today,
		Status:   status,
		Entries:  len(s.History),
		Settings: s.Settings,
		Insights: fortress.NewInsights(s, today),
	}
}

// FundRow is a registered fund with its lifetime contribution.
type FundRow struct {
	Name     string
	Category fortress.Category
	Total    decimal.Decimal
}

// Funds is the data of the funds view.
type Funds struct {
	Rows  []FundRow
	Total decimal.Decimal
}

// NewFunds lists the registered funds in registry order.
func NewFunds(s *fortress.State) *Funds {
	totals := fortress.FundTotals(s)
	f := &Funds{Total: decimal.Zero}
	for _, fund := range s.Funds {
		f.Rows = append(f.Rows, FundRow{Name: fund.Name, Category: fund.Category, Total: totals[fund.Name]})
		f.Total = f.Total.Add(totals[fund.Name])
	}
	return f
}

// Allocations is the data of the allocation template view.
type Allocations struct {
	Rows       fortress.Template
	Sum        decimal.Decimal
	Unassigned decimal.Decimal // percent of the surplus left out of the template
	Unknown    []string        // funds of the template that are not registered
}

// NewAllocations describes the live template of s.
func NewAllocations(s *fortress.State) *Allocations {
	a := &Allocations{Rows: s.Allocations, Sum: s.Allocations.Sum()}
	a.Unassigned = decimal.NewFromInt(100).Sub(a.Sum)
	for _, r := range s.Allocations {
		if _, ok := s.Funds.Lookup(r.Fund); !ok {
			a.Unknown = append(a.Unknown, r.Fund)
		}
	}
	return a
}

// Todos is the data of the todo view.
type Todos struct {
	Today date.Date
	Rows  fortress.Todos
}

// Logged is the data of the view shown after logging an investment.
type Logged struct {
	Entry         fortress.Entry
	Contributions []fortress.Contribution
}

// NewLogged describes a freshly logged entry.
func NewLogged(e fortress.Entry) *Logged {
	return &Logged{Entry: e, Contributions: fortress.Contributions(e)}
}
