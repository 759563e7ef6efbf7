package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/date"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

func testBooks() *Books {
	s := fortress.NewState(fortress.DefaultSettings())
	s.History.Insert(fortress.NewEntry(date.New(2026, time.March, 5), decimal.NewFromInt(20000), s.Allocations))
	return &Books{
		Source: fortress.NewSession(s, nil, zerolog.Nop()),
		Status: "STORAGE: SECURE",
	}
}

func call(lib Library, name string, args map[string]any) *genai.FunctionResponse {
	return lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
}

func TestBooks_Functions(t *testing.T) {
	lib := NewLibrary(testBooks().Functions())

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"Summary", map[string]any{"date": "2026-10-16"}, "# Fortress on 16 Oct 2026"},
		{"Summary", nil, "STORAGE: SECURE"},
		{"History", map[string]any{"page": float64(1)}, "## 05 Mar 2026"},
		{"History", nil, "₹20,000"},
		{"Funds", nil, "| ICICI Savings | debt | ₹10,000 |"},
		{"Allocations", nil, "| ICICI BAF | 20% |"},
		{"Todos", nil, "Nothing to do."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(lib, tt.name, tt.args)
			if resp.ID != "1" || resp.Name != tt.name {
				t.Errorf("response header = (%q, %q), want (\"1\", %q)", resp.ID, resp.Name, tt.name)
			}
			out, ok := resp.Response["output"].(string)
			if !ok {
				t.Fatalf("no output in %v", resp.Response)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("%s output does not contain %q:\n%s", tt.name, tt.want, out)
			}
		})
	}
}

func TestBooks_InvalidArguments(t *testing.T) {
	lib := NewLibrary(testBooks().Functions())

	tests := []struct {
		name string
		args map[string]any
	}{
		{"Summary", map[string]any{"date": 12}},
		{"Summary", map[string]any{"date": "not a date"}},
		{"History", map[string]any{"page": "two"}},
		{"Unknown", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(lib, tt.name, tt.args)
			if _, ok := resp.Response["error"].(string); !ok {
				t.Errorf("%s(%v) = %v, want an error", tt.name, tt.args, resp.Response)
			}
		})
	}
}

func TestExpert_Call(t *testing.T) {
	e := &Expert{Name: "Accountant"}

	// a question that is not a string is rejected before reaching the model.
	resp := e.Call(context.Background(), "7", map[string]any{"question": 42})
	if resp.ID != "7" || resp.Name != "Accountant" {
		t.Errorf("response header = (%q, %q)", resp.ID, resp.Name)
	}
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("Call() = %v, want an error", resp.Response)
	}

	// an expert that has not been started reports an error too.
	resp = e.Call(context.Background(), "8", map[string]any{"question": "how much?"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("Call() = %v, want an error", resp.Response)
	}
}

func TestNewFacilitator(t *testing.T) {
	experts := []*Expert{NewResearcher(DefaultModel), NewAccountant(DefaultModel, testBooks())}
	f := NewFacilitator(DefaultModel, experts...)

	decls := f.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Researcher" || decls[1].Name != "Accountant" {
		t.Errorf("facilitator tools = %v, want the two experts", decls)
	}
}

func TestAgent_Bye(t *testing.T) {
	var out strings.Builder
	a := New(&out, strings.NewReader("\n  bye  \nnever read\n"), DefaultModel)
	// mark the facilitator as started, the loop exits before asking anything.
	a.Facilitator.chat = &genai.Chat{}

	if err := a.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.Count(out.String(), prompt); got != 2 {
		t.Errorf("prompted %d times, want 2:\n%s", got, out.String())
	}
}

func TestAgent_EOF(t *testing.T) {
	var out strings.Builder
	a := New(&out, strings.NewReader(""), DefaultModel)
	a.Facilitator.chat = &genai.Chat{}

	if err := a.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error = %v, want a clean exit", err)
	}
}
