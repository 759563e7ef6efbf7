package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type allocateCmd struct {
	reset bool
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "add a fund to the allocation template" }
func (*allocateCmd) Usage() string {
	return `ftr allocate [-reset] [<fund> <ratio>]

  Adds <fund> with <ratio> percent of each surplus to the allocation template.
  With -reset the template is emptied first.
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.reset, "reset", false, "Empty the template before adding.")
}

func (c *allocateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 1 || (f.NArg() == 0 && !c.reset) {
		fmt.Fprintln(stderr, "Error: allocate requires a fund name and a ratio")
		return subcommands.ExitUsageError
	}
	var name string
	var ratio decimal.Decimal
	if f.NArg() > 0 {
		args := f.Args()
		var err error
		ratio, err = decimal.NewFromString(strings.TrimSuffix(args[len(args)-1], "%"))
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing ratio %q: %v\n", args[len(args)-1], err)
			return subcommands.ExitUsageError
		}
		name = strings.TrimSpace(strings.Join(args[:len(args)-1], " "))
	}

	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	if c.reset {
		a.session.ResetAllocations(ctx)
	}
	if f.NArg() > 0 {
		if err := a.session.AddAllocation(ctx, name, ratio); err != nil {
			fmt.Fprintf(stderr, "Error adding allocation: %v\n", err)
			return subcommands.ExitFailure
		}
		a.session.Read(func(s *fortress.State) {
			if _, ok := s.Funds.Lookup(name); ok {
				return
			}
			if guess, ok := s.Funds.Suggest(name); ok {
				fmt.Fprintf(stderr, "Warning: %q is not a registered fund, did you mean %q?\n", name, guess)
			} else {
				fmt.Fprintf(stderr, "Warning: %q is not a registered fund, register it with 'ftr add-fund'.\n", name)
			}
		})
	}
	a.degraded()

	var md string
	a.session.Read(func(s *fortress.State) {
		md = renderer.RenderAllocations(renderer.NewAllocations(s), a.options())
	})
	printMarkdown(md)
	return subcommands.ExitSuccess
}

type allocationsCmd struct{}

func (*allocationsCmd) Name() string     { return "allocations" }
func (*allocationsCmd) Synopsis() string { return "display the allocation template" }
func (*allocationsCmd) Usage() string {
	return `ftr allocations

  Displays how the next surplus will be split.
`
}

func (*allocationsCmd) SetFlags(f *flag.FlagSet) {}

func (*allocationsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	var md string
	a.session.Read(func(s *fortress.State) {
		md = renderer.RenderAllocations(renderer.NewAllocations(s), a.options())
	})
	printMarkdown(md)
	return subcommands.ExitSuccess
}
