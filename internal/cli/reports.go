package cli

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/SscSPs/finance_manager/internal/adapters/csvexport"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/utils"
	"github.com/SscSPs/finance_manager/internal/utils/accounting"
	"github.com/google/subcommands"
)

type profitLossCmd struct {
	app    *App
	params dto.ProfitLossParams
}

func (*profitLossCmd) Name() string     { return "profit-loss" }
func (*profitLossCmd) Synopsis() string { return "report profit or loss" }
func (*profitLossCmd) Usage() string {
	return `profit-loss [-from <YYYY-MM-DD>] [-to <YYYY-MM-DD>]
`
}

func (c *profitLossCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.params.From, "from", "", "earliest date (YYYY-MM-DD)")
	f.StringVar(&c.params.To, "to", "", "latest date (YYYY-MM-DD)")
}

func (c *profitLossCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, to, err := c.params.Range()
	if err != nil {
		return c.app.fail(err)
	}
	report, err := c.app.Services.Reporting.ProfitAndLoss(ctx, from, to)
	if err != nil {
		return c.app.fail(err)
	}

	cur := c.app.Config.CurrencyCode
	fmt.Fprintf(c.app.Stdout, "Total income:  %s\n", utils.FormatMoney(report.TotalIncome, cur))
	fmt.Fprintf(c.app.Stdout, "Total expense: %s\n", utils.FormatMoney(report.TotalExpense, cur))
	fmt.Fprintln(c.app.Stdout, accounting.PAndLLabel(*report, cur))
	return subcommands.ExitSuccess
}

type exportCmd struct {
	app  *App
	view string
	out  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a table as CSV" }
func (*exportCmd) Usage() string {
	return `export -view <stock|income|expense|categories> [-out <path>]

  Writes the view to path, adding .csv when it has no extension. The default
  path is <view>.csv in the current directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "", "stock, income, expense or categories")
	f.StringVar(&c.out, "out", "", "output file")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.view == "" {
		return c.app.usage("export needs -view, one of %v", c.app.Services.Export.Views())
	}
	table, err := c.app.Services.Export.Table(ctx, c.view)
	if err != nil {
		return c.app.fail(err)
	}

	out := c.out
	if out == "" {
		out = filepath.Join(".", table.Name)
	}
	path, err := csvexport.WriteFile(out, table)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Stdout, "Exported %d %s rows to %s\n", len(table.Rows), table.Name, path)
	return subcommands.ExitSuccess
}
