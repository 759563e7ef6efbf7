package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display wealth, emergency buffer and a suggestion" }
func (*summaryCmd) Usage() string {
	return `ftr summary [-d <date>]

  Displays the dashboard: total wealth, emergency buffer against its target,
  average monthly contribution of the year and what to focus on next.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Day of the summary. See 'ftr topic dates' for supported formats.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	var md string
	a.session.Read(func(s *fortress.State) {
		md = renderer.RenderSummary(renderer.NewSummary(s, on, a.store.Status().String()), a.options())
	})
	printMarkdown(md)
	return subcommands.ExitSuccess
}
