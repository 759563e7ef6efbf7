package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fortress"
	"github.com/google/subcommands"
)

type queryCmd struct {
	indent bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the stored fortress" }
func (*queryCmd) Usage() string {
	return `ftr query [-indent] <jsonpath>

  Evaluates <jsonpath> against the stored document and prints the result as
  JSON, for instance:

    ftr query '$.history[*].total'
    ftr query '$.masterFunds[?(@.category=="equity")].name'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.indent, "indent", false, "Indent the result.")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: query requires exactly one expression")
		return subcommands.ExitUsageError
	}
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	data, err := a.store.Raw()
	if errors.Is(err, fs.ErrNotExist) {
		// nothing stored yet, query the fortress as it would be saved.
		var buf bytes.Buffer
		a.session.Read(func(s *fortress.State) { err = fortress.EncodeSnapshot(&buf, s) })
		data = buf.Bytes()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error reading %s: %v\n", a.store.Path(), err)
		return subcommands.ExitFailure
	}
	out, err := query(data, f.Arg(0), c.indent)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// query evaluates path on the JSON document data.
func query(data []byte, path string, indent bool) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	if indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
