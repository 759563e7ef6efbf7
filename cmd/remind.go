package cmd

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/etnz/fortress"
	"github.com/google/subcommands"
)

type remindCmd struct {
	watch    bool
	schedule string
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "print the reminders due today" }
func (*remindCmd) Usage() string {
	return `ftr remind [-watch [-schedule <cron>]]

  Prints the reminders due today that are not completed. With -watch, keeps
  running and checks again on a cron schedule ("0 9 * * *" by default,
  see reminders.schedule in 'ftr topic config'), each reminder is printed
  at most once per day.
`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.watch, "watch", false, "Keep checking on a schedule until interrupted.")
	f.StringVar(&c.schedule, "schedule", "", "Cron schedule of the checks. Overrides the configuration.")
}

func (c *remindCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}

	source := fortress.Reader(a.session)
	if c.watch {
		// todos added by other ftr commands are seen at the next check.
		source = reloader{ctx: ctx}
	}
	w := fortress.NewWatcher(source, fortress.NewReminder(fortress.WriterNotifier{W: stdout}), a.log)

	n, err := w.Check()
	if err != nil {
		fmt.Fprintf(stderr, "Error checking reminders: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.watch {
		if n == 0 {
			fmt.Fprintln(stdout, "Nothing due today.")
		}
		return subcommands.ExitSuccess
	}

	schedule := c.schedule
	if schedule == "" {
		schedule = a.cfg.Reminders.Schedule
	}
	if err := w.Schedule(schedule); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	w.Start()
	fmt.Fprintf(stdout, "Watching reminders (%s), press Ctrl+C to stop.\n", schedule)
	<-ctx.Done()
	w.Stop()
	return subcommands.ExitSuccess
}

// reloader reads the stored fortress anew on every read.
type reloader struct {
	ctx context.Context
}

func (r reloader) Read(f func(*fortress.State)) {
	a, err := openApp(r.ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening fortress: %v\n", err)
		return
	}
	a.session.Read(f)
}
