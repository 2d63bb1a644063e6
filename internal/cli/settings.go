package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	app *App
}

func (*settingsCmd) Name() string             { return "settings" }
func (*settingsCmd) Synopsis() string         { return "show company settings" }
func (*settingsCmd) Usage() string            { return "settings\n" }
func (*settingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *settingsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := c.app.Services.Settings.GetSettings(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	printSettings(c.app, settings)
	return subcommands.ExitSuccess
}

type updateSettingsCmd struct {
	app     *App
	company string
	logo    string
	address string
	taxRate decimalFlag
}

func (*updateSettingsCmd) Name() string     { return "update-settings" }
func (*updateSettingsCmd) Synopsis() string { return "update company details and tax rate" }
func (*updateSettingsCmd) Usage() string {
	return `update-settings [-company <name>] [-logo <path>] [-address <text>] [-tax <rate>]

  Flags that are not given keep their current value. The invoice counter is
  never changed.
`
}

func (c *updateSettingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.company, "company", "", "company name")
	f.StringVar(&c.logo, "logo", "", "path of the logo printed on invoices")
	f.StringVar(&c.address, "address", "", "company address")
	f.Var(&c.taxRate, "tax", "default tax rate, e.g. 0.10")
}

func (c *updateSettingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current, err := c.app.Services.Settings.GetSettings(ctx)
	if err != nil {
		return c.app.fail(err)
	}

	req := dto.UpdateSettingsRequest{
		CompanyName: current.CompanyName,
		LogoPath:    current.LogoPath,
		Address:     current.Address,
		TaxRate:     current.TaxRate,
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "company":
			req.CompanyName = c.company
		case "logo":
			req.LogoPath = c.logo
		case "address":
			req.Address = c.address
		case "tax":
			req.TaxRate = c.taxRate.value
		}
	})

	updated, err := c.app.Services.Settings.UpdateSettings(ctx, req)
	if err != nil {
		return c.app.fail(err)
	}
	printSettings(c.app, updated)
	return subcommands.ExitSuccess
}

func printSettings(app *App, s *domain.Settings) {
	fmt.Fprintf(app.Stdout, "Company:         %s\n", s.CompanyName)
	fmt.Fprintf(app.Stdout, "Address:         %s\n", s.Address)
	fmt.Fprintf(app.Stdout, "Logo:            %s\n", s.LogoPath)
	fmt.Fprintf(app.Stdout, "Tax rate:        %s\n", s.TaxRate)
	fmt.Fprintf(app.Stdout, "Next invoice no: %d\n", s.InvoiceCounter)
}
