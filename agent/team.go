package agent

import (
	"context"
	"fmt"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/date"
	"github.com/etnz/fortress/docs"
	"github.com/etnz/fortress/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// NewFacilitator creates the expert that talks to the user and delegates to experts.
func NewFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			The user saves a monthly surplus and splits it across a few mutual funds.
			Debt funds make up the emergency buffer, equity and commodity funds build long term wealth.
			Answer with short markdown. Amounts are in the user's currency, never convert them.`),
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates an expert grounded on Google Search.
func NewResearcher(model string) *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert of mutual funds and markets.
		Ask the Researcher whenever you need recent or grounding information about a fund or the economy.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert in mutual funds, you can find anything related to fund houses,
			expense ratios, returns, and market news. Leverage Google Search to ground your assertions.`),
		},
	}
}

// Books exposes a fortress to the models as a set of functions.
type Books struct {
	Source  fortress.Reader
	Options renderer.Options
	Status  string // storage status shown in the summary
}

// NewAccountant creates the expert that reads the user's ledger.
func NewAccountant(model string, b *Books) *Expert {
	lib := b.Functions()
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. It reads the user's investment ledger:
		contributions history, funds and their categories, allocation template, todos and wealth figures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are an accountant in charge of the user's investment ledger.
			Use the available tools to answer questions about contributions, funds, allocations,
			emergency buffer and wealth. Pardon the approximate language of your colleagues
			and figure out what they meant.`),
		},
		Library: NewLibrary(lib),
	}
}

// Functions returns the functions reading the books.
func (b *Books) Functions() []*Func {
	return []*Func{
		b.view("Summary", "Dashboard of the fortress: total wealth, emergency buffer, average monthly contribution and the current suggestion.",
			map[string]*genai.Schema{
				"date": {Type: genai.TypeString, Description: "Day of the dashboard, today by default.\n\n" + docs.MustTopic("dates")},
			},
			func(s *fortress.State, args map[string]any) (string, error) {
				on, err := dateArg(args)
				if err != nil {
					return "", err
				}
				return renderer.RenderSummary(renderer.NewSummary(s, on, b.Status), b.Options), nil
			}),
		b.view("History", "Contributions grouped by day, most recent first.",
			map[string]*genai.Schema{
				"page": {Type: genai.TypeInteger, Description: "Page number starting at 1, each page shows 5 more days."},
			},
			func(s *fortress.State, args map[string]any) (string, error) {
				page, err := intArg(args, "page", 1)
				if err != nil {
					return "", err
				}
				return renderer.RenderHistory(renderer.NewHistory(s, page), b.Options), nil
			}),
		b.view("Funds", "Registered funds with their category and the lifetime amount invested in each.", nil,
			func(s *fortress.State, _ map[string]any) (string, error) {
				return renderer.RenderFunds(renderer.NewFunds(s), b.Options), nil
			}),
		b.view("Allocations", "The allocation template used to split the next surplus.", nil,
			func(s *fortress.State, _ map[string]any) (string, error) {
				return renderer.RenderAllocations(renderer.NewAllocations(s), b.Options), nil
			}),
		b.view("Todos", "Reminders with their due day and status.", nil,
			func(s *fortress.State, _ map[string]any) (string, error) {
				return renderer.RenderTodos(&renderer.Todos{Today: date.Today(), Rows: s.Todos}, b.Options), nil
			}),
	}
}

// view declares a function rendering a markdown view of the state.
func (b *Books) view(name, description string, params map[string]*genai.Schema, render func(*fortress.State, map[string]any) (string, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: params},
			Response:    &genai.Schema{Type: genai.TypeString, Description: "A markdown document."},
		},
		Func: func(_ context.Context, args map[string]any) (out string, err error) {
			b.Source.Read(func(s *fortress.State) {
				out, err = render(s, args)
			})
			return out, err
		},
	}
}

func dateArg(args map[string]any) (date.Date, error) {
	v, ok := args["date"]
	if !ok {
		return date.Today(), nil
	}
	s, ok := v.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("argument 'date' is not a string as expected but %T", v)
	}
	on, err := date.ParseInput(s, date.Today())
	if err != nil {
		return date.Date{}, fmt.Errorf("argument 'date' must be a valid date got %q: %w", s, err)
	}
	return on, nil
}

// intArg reads an integer argument, JSON numbers are decoded as float64.
func intArg(args map[string]any, name string, def int) (int, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
}
