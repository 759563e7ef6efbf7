package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fortress"
	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display the storage status" }
func (*statusCmd) Usage() string {
	return `ftr status

  Displays where the fortress is stored and whether changes are saved.
`
}

func (*statusCmd) SetFlags(f *flag.FlagSet) {}

func (*statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, a.store.Status())
	fmt.Fprintf(stdout, "File: %s\n", a.store.Path())
	if err := a.store.Reason(); err != nil {
		fmt.Fprintf(stdout, "Reason: %v\n", err)
	}
	a.session.Read(func(s *fortress.State) {
		fmt.Fprintf(stdout, "Entries: %d, funds: %d, todos: %d\n", len(s.History), len(s.Funds), len(s.Todos))
	})
	return subcommands.ExitSuccess
}
