package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/utils"
	"github.com/google/subcommands"
)

type addStockCmd struct {
	app       *App
	date      string
	txnType   string
	vendor    string
	item      string
	quantity  decimalFlag
	unitPrice decimalFlag
}

func (*addStockCmd) Name() string     { return "add-stock" }
func (*addStockCmd) Synopsis() string { return "record a stock purchase or sale" }
func (*addStockCmd) Usage() string {
	return `add-stock -date <YYYY-MM-DD> -type <Purchase|Sale> -vendor <name> -item <name> -qty <n> -price <n>

  Records a stock transaction. The total price is quantity * unit price.
  The same date, type, vendor and item cannot be recorded twice.
`
}

func (c *addStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "transaction date (YYYY-MM-DD)")
	f.StringVar(&c.txnType, "type", "Purchase", "Purchase or Sale")
	f.StringVar(&c.vendor, "vendor", "", "vendor name")
	f.StringVar(&c.item, "item", "", "item name")
	f.Var(&c.quantity, "qty", "quantity")
	f.Var(&c.unitPrice, "price", "unit price")
}

func (c *addStockCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txn, err := c.app.Services.Stock.RecordStock(ctx, dto.CreateStockRequest{
		Date:            c.date,
		TransactionType: c.txnType,
		VendorName:      c.vendor,
		ItemName:        c.item,
		Quantity:        c.quantity.value,
		UnitPrice:       c.unitPrice.value,
	})
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Stdout, "Recorded stock transaction %d: %s %s x %s from %s, total %s\n",
		txn.ID, txn.TransactionType, txn.ItemName, txn.Quantity, txn.VendorName,
		utils.FormatMoney(txn.TotalPrice, c.app.Config.CurrencyCode))
	return subcommands.ExitSuccess
}

type listStockCmd struct {
	app    *App
	params dto.ListStockParams
}

func (*listStockCmd) Name() string     { return "list-stock" }
func (*listStockCmd) Synopsis() string { return "list stock transactions, newest first" }
func (*listStockCmd) Usage() string {
	return `list-stock [-type <Purchase|Sale>] [-from <date>] [-to <date>] [-limit <n>] [-next <token>]
`
}

func (c *listStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.params.TransactionType, "type", "", "only Purchase or Sale rows")
	f.StringVar(&c.params.From, "from", "", "earliest date (YYYY-MM-DD)")
	f.StringVar(&c.params.To, "to", "", "latest date (YYYY-MM-DD)")
	f.IntVar(&c.params.Limit, "limit", 20, "page size")
	f.StringVar(&c.params.NextToken, "next", "", "token printed by the previous page")
}

func (c *listStockCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txns, next, err := c.app.Services.Stock.ListStock(ctx, c.params)
	if err != nil {
		return c.app.fail(err)
	}

	cur := c.app.Config.CurrencyCode
	w := tabwriter.NewWriter(c.app.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tVENDOR\tITEM\tQTY\tUNIT PRICE\tTOTAL")
	for _, t := range txns {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date.Format("2006-01-02"), t.TransactionType, t.VendorName, t.ItemName,
			t.Quantity, utils.FormatMoney(t.UnitPrice, cur), utils.FormatMoney(t.TotalPrice, cur))
	}
	if err := w.Flush(); err != nil {
		return c.app.fail(err)
	}
	printNext(c.app, next)
	return subcommands.ExitSuccess
}

func printNext(app *App, next *string) {
	if next != nil {
		fmt.Fprintf(app.Stdout, "\nMore rows: -next %s\n", *next)
	}
}
