package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/date"
	"github.com/etnz/fortress/store"
	"github.com/google/subcommands"
)

type exportCmd struct {
	dated bool
	dir   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup of the fortress" }
func (*exportCmd) Usage() string {
	return `ftr export [-dated] [-o <dir>]

  Writes the whole fortress as indented JSON to fortress_backup.json, or
  fortress_backup_YYYY-MM-DD.json with -dated.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dated, "dated", false, "Suffix the file name with today's date.")
	f.StringVar(&c.dir, "o", ".", "Directory of the backup file.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if info, err := os.Stat(c.dir); err != nil || !info.IsDir() {
		fmt.Fprintf(stderr, "Error: %q is not a directory\n", c.dir)
		return subcommands.ExitUsageError
	}
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	var path string
	var err error
	a.session.Read(func(s *fortress.State) {
		path, err = store.ExportFile(c.dir, s, date.Today(), c.dated)
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Exported to %s\n", path)
	return subcommands.ExitSuccess
}
