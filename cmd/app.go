// Package cmd implements the ftr command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fortress"
	"github.com/etnz/fortress/config"
	"github.com/etnz/fortress/date"
	"github.com/etnz/fortress/renderer"
	"github.com/etnz/fortress/store"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the configuration file. Defaults to fortress/config.toml in the user config directory.")
	dataDir    = flag.String("data-dir", "", "Directory of the fortress snapshot. Overrides the configuration.")
	Verbose    = flag.Bool("v", false, "Log debug messages.")
)

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands lists the subcommands by group.
var Commands = map[string][]subcommands.Command{
	"ledger": {
		&logCmd{}, &historyCmd{}, &rmCmd{}, &summaryCmd{},
	},
	"funds": {
		&addFundCmd{}, &reclassifyCmd{}, &fundsCmd{}, &allocateCmd{}, &allocationsCmd{},
	},
	"todos": {
		&addTodoCmd{}, &doneCmd{}, &todosCmd{}, &remindCmd{},
	},
	"data": {
		&settingsCmd{}, &exportCmd{}, &importCmd{}, &queryCmd{}, &statusCmd{},
	},
	"help": {
		&assistCmd{}, &topicCmd{},
	},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, group := range []string{"ledger", "funds", "todos", "data", "help"} {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}

// app is what a command needs to act on the fortress.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   *store.Store
	session *fortress.Session
}

// newLogger builds the process logger, writing to stderr.
func newLogger(level string) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if l, err := zerolog.ParseLevel(level); err == nil && level != "" {
		lvl = l
	}
	if *Verbose {
		lvl = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: stderr, NoColor: !isTerminal(stderr)}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// openApp loads the configuration and the fortress.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.Storage.Dir = *dataDir
	}
	log := newLogger(cfg.LogLevel)

	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}
	st := store.New(dir, cfg.Storage.File, log)
	state := st.Open(ctx, fortress.NewState(cfg.FortressSettings()))
	if st.Status() != store.Secure {
		log.Warn().Err(st.Reason()).Msg("changes will not be saved")
	}

	session := fortress.NewSession(state, st, log)
	session.Limit = cfg.Display.PageSize
	return &app{cfg: cfg, log: log, store: st, session: session}, nil
}

// open is openApp reporting errors on stderr.
func open(ctx context.Context) (*app, bool) {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening fortress: %v\n", err)
		return nil, false
	}
	return a, true
}

func (a *app) options() renderer.Options {
	return renderer.Options{Currency: a.cfg.Display.Currency}
}

func (a *app) money(d decimal.Decimal) string {
	return fortress.FormatAmount(d, a.cfg.Display.Currency)
}

// degraded warns the user that a change was not saved.
func (a *app) degraded() {
	if a.store.Status() != store.Secure {
		fmt.Fprintf(stderr, "Warning: %s, this change is lost when ftr exits.\n", a.store.Status())
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// printMarkdown prints md to stdout, styled when stdout is a terminal.
func printMarkdown(md string) { fmt.Fprint(stdout, renderMarkdown(md)) }

// renderMarkdown styles md for the terminal, or returns it unchanged.
func renderMarkdown(md string) string {
	if !isTerminal(stdout) {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// parseDate parses a command line date relative to today.
func parseDate(s string) (date.Date, error) {
	return date.ParseInput(s, date.Today())
}

// parseIndex parses a position in a list.
func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an index", s)
	}
	return i, nil
}

// confirm asks a yes/no question on stdin, no is the default.
func confirm(question string) bool {
	fmt.Fprintf(stdout, "%s [y/N] ", question)
	var answer string
	fmt.Fscanln(stdin, &answer)
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
