package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fortress/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `ftr assist [<question>]

  Starts an interactive session with an assistant that can read the fortress
  and search for information about funds. Requires GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	model := a.cfg.Assist.Model
	books := &agent.Books{Source: a.session, Options: a.options(), Status: a.store.Status().String()}
	assistant := agent.New(stdout, stdin, model, agent.NewResearcher(model), agent.NewAccountant(model, books))
	assistant.Render = renderMarkdown

	if err := assistant.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
