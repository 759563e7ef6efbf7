package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type logCmd struct {
	date string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "log a surplus split with the allocation template" }
func (*logCmd) Usage() string {
	return `ftr log [-d <date>] <amount>

  Records <amount> as invested on <date>, split across funds according to the
  current allocation template. The split is frozen: later changes of the
  template do not modify it.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Day of the investment. See 'ftr topic dates' for supported formats.")
}

func (c *logCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: log requires exactly one amount")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	a.session.Surplus = amount
	a.session.LogDate = on
	e, err := a.session.LogInvestment(ctx)
	if errors.Is(err, fortress.ErrNoSurplus) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error logging investment: %v\n", err)
		return subcommands.ExitFailure
	}
	a.degraded()
	printMarkdown(renderer.RenderLogged(renderer.NewLogged(e), a.options()))
	return subcommands.ExitSuccess
}
