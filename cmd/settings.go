package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fortress"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type settingsCmd struct {
	emergency string
	wealth    string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "display or change the targets" }
func (*settingsCmd) Usage() string {
	return `ftr settings [-emergency <amount>] [-wealth <amount>]

  Displays the emergency and wealth targets, or changes them.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.emergency, "emergency", "", "New emergency buffer target.")
	f.StringVar(&c.wealth, "wealth", "", "New wealth target.")
}

func (c *settingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	var settings fortress.Settings
	a.session.Read(func(s *fortress.State) { settings = s.Settings })

	if c.emergency != "" || c.wealth != "" {
		for _, v := range []struct {
			flag  string
			value string
			dst   *decimal.Decimal
		}{
			{"emergency", c.emergency, &settings.EmergencyTarget},
			{"wealth", c.wealth, &settings.WealthTarget},
		} {
			if v.value == "" {
				continue
			}
			d, err := decimal.NewFromString(v.value)
			if err != nil || d.IsNegative() {
				fmt.Fprintf(stderr, "Error: invalid -%s target %q\n", v.flag, v.value)
				return subcommands.ExitUsageError
			}
			*v.dst = d
		}
		a.session.SetSettings(ctx, settings)
		a.degraded()
	}

	fmt.Fprintf(stdout, "Emergency target: %s\nWealth target: %s\n", a.money(settings.EmergencyTarget), a.money(settings.WealthTarget))
	return subcommands.ExitSuccess
}
