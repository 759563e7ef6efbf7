// Command ftr tracks how a monthly surplus is split across mutual funds.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fortress/cmd"
	"github.com/google/subcommands"
)

func main() {
	// answer shell completion requests, a no-op otherwise.
	cmd.Completion(flag.CommandLine).Complete("ftr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
