package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/fortress"
	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a contribution" }
func (*rmCmd) Usage() string {
	return `ftr rm [-y] <#index|id>

  Deletes one contribution, designated by its index in 'ftr history' (e.g.
  #0) or by a prefix of its id. A bare number is accepted as an index when it
  is not also an id prefix. There is no undo.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: rm requires exactly one index or id")
		return subcommands.ExitUsageError
	}
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}

	var i int
	var err error
	a.session.Read(func(s *fortress.State) { i, err = s.History.Find(f.Arg(0)) })
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ask := func(e fortress.Entry) bool {
		return c.yes || confirm(fmt.Sprintf("Delete %s logged on %s?", a.money(e.Total), e.Date))
	}
	e, err := a.session.RemoveEntry(ctx, i, ask)
	if errors.Is(err, fortress.ErrNotConfirmed) {
		fmt.Fprintln(stdout, "Nothing deleted.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error deleting entry: %v\n", err)
		return subcommands.ExitFailure
	}
	a.degraded()
	fmt.Fprintf(stdout, "Deleted %s logged on %s.\n", a.money(e.Total), e.Date)
	return subcommands.ExitSuccess
}
