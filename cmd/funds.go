package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/renderer"
	"github.com/google/subcommands"
)

func categoryUsage() string {
	names := make([]string, len(fortress.Categories))
	for i, c := range fortress.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

type addFundCmd struct {
	category string
}

func (*addFundCmd) Name() string     { return "add-fund" }
func (*addFundCmd) Synopsis() string { return "register a fund" }
func (*addFundCmd) Usage() string {
	return `ftr add-fund [-c <category>] <name>

  Registers a fund. Contributions to debt funds make up the emergency buffer.
`
}

func (c *addFundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", string(fortress.Debt), "Category of the fund: "+categoryUsage()+".")
}

func (c *addFundCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: add-fund requires a fund name")
		return subcommands.ExitUsageError
	}
	category, err := fortress.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	if err := a.session.AddFund(ctx, name, category); err != nil {
		fmt.Fprintf(stderr, "Error adding fund: %v\n", err)
		return subcommands.ExitFailure
	}
	a.degraded()
	fmt.Fprintf(stdout, "Registered %s (%s).\n", strings.TrimSpace(name), category)
	return subcommands.ExitSuccess
}

type reclassifyCmd struct{}

func (*reclassifyCmd) Name() string     { return "reclassify" }
func (*reclassifyCmd) Synopsis() string { return "change the category of a fund" }
func (*reclassifyCmd) Usage() string {
	return `ftr reclassify <name> <category>

  Changes the category of a registered fund. Every past contribution to the
  fund is counted in its new category.
`
}

func (*reclassifyCmd) SetFlags(f *flag.FlagSet) {}

func (*reclassifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(stderr, "Error: reclassify requires a fund name and a category")
		return subcommands.ExitUsageError
	}
	args := f.Args()
	category, err := fortress.ParseCategory(args[len(args)-1])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	name := strings.Join(args[:len(args)-1], " ")

	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	if err := a.session.Reclassify(ctx, name, category); err != nil {
		fmt.Fprintf(stderr, "Error reclassifying fund: %v\n", err)
		return subcommands.ExitFailure
	}
	a.degraded()
	fmt.Fprintf(stdout, "%s is now %s.\n", name, category)
	return subcommands.ExitSuccess
}

type fundsCmd struct{}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list funds and their lifetime contributions" }
func (*fundsCmd) Usage() string {
	return `ftr funds

  Lists the registered funds, their category and the total invested in each.
`
}

func (*fundsCmd) SetFlags(f *flag.FlagSet) {}

func (*fundsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	var md string
	a.session.Read(func(s *fortress.State) {
		md = renderer.RenderFunds(renderer.NewFunds(s), a.options())
	})
	printMarkdown(md)
	return subcommands.ExitSuccess
}
