package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fortress/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	page int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display contributions grouped by day" }
func (*historyCmd) Usage() string {
	return `ftr history [-page <n>]

  Displays the contributions grouped by day, most recent first. Each page
  shows 5 more days.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.page, "page", 1, "Number of pages to show.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.page < 1 {
		fmt.Fprintf(stderr, "Error: invalid page %d\n", c.page)
		return subcommands.ExitUsageError
	}
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	for range c.page - 1 {
		a.session.LoadMore()
	}
	h := &renderer.History{Page: a.session.HistoryPage(), Next: c.page + 1}
	printMarkdown(renderer.RenderHistory(h, a.options()))
	return subcommands.ExitSuccess
}
