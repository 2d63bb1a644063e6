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

type invoiceCmd struct {
	app      *App
	number   string
	date     string
	customer string
	address  string
	items    lineItemsFlag
	stockIDs idsFlag
	taxRate  decimalFlag
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "generate an invoice document" }
func (*invoiceCmd) Usage() string {
	return `invoice -customer <name> [-address <text>] [-item <desc:qty:price>]... [-stock <id,id>] [-number <n>] [-date <YYYY-MM-DD>] [-tax <rate>]

  Computes subtotal, tax and total and writes Invoice_<number>.pdf into
  INVOICE_OUTPUT_DIR. Items given with -item come first, then one item per
  stock transaction named with -stock. Without -number the next number is
  allocated; without -tax the settings tax rate applies.
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "number", "", "invoice number (allocated when empty)")
	f.StringVar(&c.date, "date", "", "invoice date (YYYY-MM-DD, today when empty)")
	f.StringVar(&c.customer, "customer", "", "customer name")
	f.StringVar(&c.address, "address", "", "customer address")
	f.Var(&c.items, "item", "line item as description:quantity:price, repeatable")
	f.Var(&c.stockIDs, "stock", "comma separated stock transaction ids")
	f.Var(&c.taxRate, "tax", "tax rate override, e.g. 0.10")
}

func (c *invoiceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req := dto.CreateInvoiceRequest{
		Number:          c.number,
		Date:            c.date,
		CustomerName:    c.customer,
		CustomerAddress: c.address,
		Items:           c.items,
		StockIDs:        c.stockIDs,
	}
	if c.taxRate.set {
		req.TaxRate = &c.taxRate.value
	}

	inv, err := c.app.Services.Invoice.GenerateInvoice(ctx, req)
	if err != nil {
		return c.app.fail(err)
	}

	cur := c.app.Config.CurrencyCode
	fmt.Fprintf(c.app.Stdout, "Invoice %s for %s (%s)\n", inv.Number, inv.CustomerName, inv.Date.Format("2006-01-02"))
	w := tabwriter.NewWriter(c.app.Stdout, 0, 4, 2, ' ', 0)
	for _, item := range inv.Items {
		fmt.Fprintf(w, "  %s\t%s x %s\t%s\n", item.Description, item.Quantity, utils.FormatMoney(item.Price, cur), utils.FormatMoney(item.Total(), cur))
	}
	fmt.Fprintf(w, "  Subtotal\t\t%s\n", utils.FormatMoney(inv.Subtotal, cur))
	fmt.Fprintf(w, "  Tax\t\t%s\n", utils.FormatMoney(inv.Tax, cur))
	fmt.Fprintf(w, "  Total\t\t%s\n", utils.FormatMoney(inv.Total, cur))
	if err := w.Flush(); err != nil {
		return c.app.fail(err)
	}
	if inv.FilePath != "" {
		fmt.Fprintf(c.app.Stdout, "Written to %s\n", inv.FilePath)
	}
	return subcommands.ExitSuccess
}
