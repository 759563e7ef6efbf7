package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/date"
	"github.com/etnz/fortress/renderer"
	"github.com/google/subcommands"
)

type addTodoCmd struct {
	date string
}

func (*addTodoCmd) Name() string     { return "add-todo" }
func (*addTodoCmd) Synopsis() string { return "add a reminder" }
func (*addTodoCmd) Usage() string {
	return `ftr add-todo -d <date> <title>

  Adds a reminder due on <date>, for instance the renewal of a deposit.
`
}

func (c *addTodoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Due day, required. See 'ftr topic dates' for supported formats.")
}

func (c *addTodoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(stderr, "Error: add-todo requires a due date (-d)")
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	title := strings.Join(f.Args(), " ")

	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	if err := a.session.AddTodo(ctx, title, on); err != nil {
		fmt.Fprintf(stderr, "Error adding todo: %v\n", err)
		return subcommands.ExitFailure
	}
	a.degraded()
	fmt.Fprintf(stdout, "Added %q due on %s.\n", strings.TrimSpace(title), on.Long())
	return subcommands.ExitSuccess
}

type doneCmd struct{}

func (*doneCmd) Name() string     { return "done" }
func (*doneCmd) Synopsis() string { return "mark a reminder as completed" }
func (*doneCmd) Usage() string {
	return `ftr done <index>

  Marks the reminder at <index> in 'ftr todos' as completed.
`
}

func (*doneCmd) SetFlags(f *flag.FlagSet) {}

func (*doneCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: done requires exactly one index")
		return subcommands.ExitUsageError
	}
	i, err := parseIndex(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	if err := a.session.CompleteTodo(ctx, i); err != nil {
		fmt.Fprintf(stderr, "Error completing todo: %v\n", err)
		return subcommands.ExitFailure
	}
	a.degraded()
	return subcommands.ExitSuccess
}

type todosCmd struct{}

func (*todosCmd) Name() string     { return "todos" }
func (*todosCmd) Synopsis() string { return "list reminders" }
func (*todosCmd) Usage() string {
	return `ftr todos

  Lists the reminders by due day.
`
}

func (*todosCmd) SetFlags(f *flag.FlagSet) {}

func (*todosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	var md string
	a.session.Read(func(s *fortress.State) {
		md = renderer.RenderTodos(&renderer.Todos{Today: date.Today(), Rows: s.Todos}, a.options())
	})
	printMarkdown(md)
	return subcommands.ExitSuccess
}
