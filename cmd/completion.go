package cmd

import (
	"flag"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the ftr command line for shell completion.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	var names []string
	for _, group := range Commands {
		for _, c := range group {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagPredictors(f),
				Args:  argPredictors[c.Name()],
			}
			names = append(names, c.Name())
		}
	}
	// registered by subcommands itself.
	root.Sub["help"] = &complete.Command{Args: predict.Set(names)}
	root.Sub["commands"] = &complete.Command{}
	root.Sub["flags"] = &complete.Command{Args: predict.Set(names)}
	return root
}

func categories() predict.Set {
	set := make(predict.Set, len(fortress.Categories))
	for i, c := range fortress.Categories {
		set[i] = string(c)
	}
	return set
}

func topics() predict.Set {
	all, _ := docs.GetAllTopics()
	return predict.Set(append(all, "*"))
}

var argPredictors = map[string]complete.Predictor{
	"import":     predict.Files("*.json"),
	// the fund name comes first, it is free text.
	"reclassify": predict.Something,
	"topic":      topics(),
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		switch fl.Name {
		case "c":
			flags[fl.Name] = categories()
		case "config":
			flags[fl.Name] = predict.Files("*.toml")
		case "data-dir", "o":
			flags[fl.Name] = predict.Dirs("*")
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}
