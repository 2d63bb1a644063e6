package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/utils"
	"github.com/google/subcommands"
)

type addRecordCmd struct {
	app         *App
	recordType  string
	date        string
	category    string
	description string
	amount      decimalFlag
	verified    bool
}

func (*addRecordCmd) Name() string     { return "add-record" }
func (*addRecordCmd) Synopsis() string { return "record an income or expense entry" }
func (*addRecordCmd) Usage() string {
	return `add-record -type <income|expense> -date <YYYY-MM-DD> -category <name> -amount <n> [-desc <text>] [-verified]
`
}

func (c *addRecordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.recordType, "type", "", "income or expense")
	f.StringVar(&c.date, "date", "", "entry date (YYYY-MM-DD)")
	f.StringVar(&c.category, "category", "", "category name")
	f.StringVar(&c.description, "desc", "", "free text description")
	f.Var(&c.amount, "amount", "positive amount")
	f.BoolVar(&c.verified, "verified", false, "mark the entry as verified")
}

func (c *addRecordCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	record, err := c.app.Services.Ledger.RecordEntry(ctx, dto.CreateRecordRequest{
		Type:        c.recordType,
		Date:        c.date,
		Category:    c.category,
		Description: c.description,
		Amount:      c.amount.value,
		Verified:    c.verified,
	})
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Stdout, "Recorded %s %d: %s %s\n",
		record.Type, record.ID, record.Category, utils.FormatMoney(record.Amount, c.app.Config.CurrencyCode))
	return subcommands.ExitSuccess
}

type listRecordsCmd struct {
	app    *App
	params dto.ListRecordsParams
}

func (*listRecordsCmd) Name() string     { return "list-records" }
func (*listRecordsCmd) Synopsis() string { return "list ledger entries, newest first" }
func (*listRecordsCmd) Usage() string {
	return `list-records [-type <income|expense>] [-category <name>] [-from <date>] [-to <date>] [-limit <n>] [-next <token>]
`
}

func (c *listRecordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.params.Type, "type", "", "only income or expense entries")
	f.StringVar(&c.params.Category, "category", "", "only this category")
	f.StringVar(&c.params.From, "from", "", "earliest date (YYYY-MM-DD)")
	f.StringVar(&c.params.To, "to", "", "latest date (YYYY-MM-DD)")
	f.IntVar(&c.params.Limit, "limit", 20, "page size")
	f.StringVar(&c.params.NextToken, "next", "", "token printed by the previous page")
}

func (c *listRecordsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, next, err := c.app.Services.Ledger.ListRecords(ctx, c.params)
	if err != nil {
		return c.app.fail(err)
	}

	w := tabwriter.NewWriter(c.app.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tCATEGORY\tAMOUNT\tVERIFIED\tDESCRIPTION")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\t%s\n",
			r.ID, r.Date.Format("2006-01-02"), r.Type, r.Category,
			utils.FormatMoney(r.Amount, c.app.Config.CurrencyCode), r.Verified, r.Description)
	}
	if err := w.Flush(); err != nil {
		return c.app.fail(err)
	}
	printNext(c.app, next)
	return subcommands.ExitSuccess
}

type markVerifiedCmd struct {
	app   *App
	clear bool
}

func (*markVerifiedCmd) Name() string     { return "mark-verified" }
func (*markVerifiedCmd) Synopsis() string { return "set the verified flag of ledger entries" }
func (*markVerifiedCmd) Usage() string {
	return `mark-verified [-clear] <id>...
`
}

func (c *markVerifiedCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "clear the flag instead of setting it")
}

func (c *markVerifiedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return c.app.usage("mark-verified needs at least one record id")
	}
	for _, arg := range f.Args() {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return c.app.usage("%q is not a record id", arg)
		}
		record, err := c.app.Services.Ledger.MarkVerified(ctx, id, !c.clear)
		if err != nil {
			return c.app.fail(err)
		}
		fmt.Fprintf(c.app.Stdout, "Record %d verified=%t\n", record.ID, record.Verified)
	}
	return subcommands.ExitSuccess
}

type categoriesCmd struct {
	app        *App
	recordType string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list ledger categories" }
func (*categoriesCmd) Usage() string {
	return `categories [-type <income|expense>]
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.recordType, "type", "", "only income or expense categories")
}

func (c *categoriesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	categories, err := c.app.Services.Category.ListCategories(ctx, c.recordType)
	if err != nil {
		return c.app.fail(err)
	}
	for _, cat := range categories {
		fmt.Fprintf(c.app.Stdout, "%-8s %s\n", cat.Type, cat.Name)
	}
	return subcommands.ExitSuccess
}

type addCategoryCmd struct {
	app        *App
	recordType string
	name       string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "add a ledger category" }
func (*addCategoryCmd) Usage() string {
	return `add-category -type <income|expense> -name <name>
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.recordType, "type", "", "income or expense")
	f.StringVar(&c.name, "name", "", "category name")
}

func (c *addCategoryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cat, err := c.app.Services.Category.CreateCategory(ctx, dto.CreateCategoryRequest{Type: c.recordType, Name: c.name})
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Stdout, "Added %s category %q\n", cat.Type, cat.Name)
	return subcommands.ExitSuccess
}
