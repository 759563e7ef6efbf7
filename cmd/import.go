package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fortress"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore a backup" }
func (*importCmd) Usage() string {
	return `ftr import <file>

  Replaces the fortress with the content of a backup. Keys missing from the
  backup keep their current value. An invalid file changes nothing.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: import requires exactly one file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error opening backup: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	if err := a.session.Import(ctx, file); err != nil {
		fmt.Fprintf(stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	a.degraded()
	var n int
	a.session.Read(func(s *fortress.State) { n = len(s.History) })
	fmt.Fprintf(stdout, "Imported %d entries.\n", n)
	return subcommands.ExitSuccess
}
