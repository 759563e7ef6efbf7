// Package renderer renders the views of a fortress ledger as markdown.
//
// Each view is a text/template stored as partials/<name>.md. A view that
// cannot be loaded or executed renders as a short error fragment instead of
// failing, so that a broken view never prevents the others from showing.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/date"
	"github.com/shopspring/decimal"
)

//go:embed partials/*.md
var partials embed.FS

// Options holds configuration shared by all views.
type Options struct {
	Currency string // ISO code used to format amounts
}

func (o Options) funcs() template.FuncMap {
	currency := o.Currency
	if currency == "" {
		currency = fortress.DefaultCurrency
	}
	return template.FuncMap{
		"money": func(d decimal.Decimal) string { return fortress.FormatAmount(d, currency) },
		"pct":   func(d decimal.Decimal) string { return d.String() + "%" },
		"long":  longDate,
		"due": func(t fortress.Todo, today date.Date) string {
			switch on := t.When(); {
			case t.Completed:
				return "done"
			case on == today:
				return "**today**"
			case on.Before(today):
				return "overdue"
			default:
				return ""
			}
		},
	}
}

// longDate formats a display date as "05 Jan 2026", leaving unreadable dates as is.
func longDate(display string) string {
	on, err := date.ParseDisplay(display)
	if err != nil {
		return display
	}
	return on.Long()
}

// Partial renders the view called name with data.
func Partial(name string, data any, opts Options) string {
	out, err := render(name, data, opts)
	if err != nil {
		return fmt.Sprintf("> Error loading view %q: %v\n", name, err)
	}
	return out
}

func render(name string, data any, opts Options) (string, error) {
	file := "partials/" + name + ".md"
	content, err := fs.ReadFile(partials, file)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Funcs(opts.funcs()).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("executing %q: %w", file, err)
	}
	return b.String(), nil
}

// RenderHistory renders the grouped history.
func RenderHistory(h *History, opts Options) string { return Partial("history", h, opts) }

// RenderSummary renders the dashboard.
func RenderSummary(s *Summary, opts Options) string { return Partial("summary", s, opts) }

// RenderFunds renders the funds and their lifetime totals.
func RenderFunds(f *Funds, opts Options) string { return Partial("funds", f, opts) }

// RenderAllocations renders the allocation template.
func RenderAllocations(a *Allocations, opts Options) string { return Partial("allocations", a, opts) }

// RenderTodos renders the todo list.
func RenderTodos(t *Todos, opts Options) string { return Partial("todos", t, opts) }

// RenderLogged renders a freshly logged entry.
func RenderLogged(l *Logged, opts Options) string { return Partial("logged", l, opts) }
