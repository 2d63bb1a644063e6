package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type initCmd struct {
	app *App
}

func (*initCmd) Name() string             { return "init" }
func (*initCmd) Synopsis() string         { return "create the database schema and seed defaults" }
func (*initCmd) Usage() string            { return "init\n\n  Safe to run repeatedly.\n" }
func (*initCmd) SetFlags(_ *flag.FlagSet) {}

func (c *initCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.Store.Initialize(ctx); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Stdout, "Database ready at %s\n", c.app.Store.Path())
	return subcommands.ExitSuccess
}

type backupCmd struct {
	app *App
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "copy the database to a timestamped file" }
func (*backupCmd) Usage() string {
	return `backup

  Writes backup_<YYYYMMDD_HHMMSS>.db next to the database. A backup taken in
  the same second replaces the earlier one.
`
}

func (*backupCmd) SetFlags(_ *flag.FlagSet) {}

func (c *backupCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, err := c.app.Services.Maintenance.Backup(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Stdout, "Backup written to %s\n", path)
	return subcommands.ExitSuccess
}

type verifyCmd struct {
	app *App
}

func (*verifyCmd) Name() string             { return "verify" }
func (*verifyCmd) Synopsis() string         { return "check stored data for problems" }
func (*verifyCmd) Usage() string            { return "verify\n" }
func (*verifyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *verifyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.app.Services.Maintenance.Verify(ctx)
	if err != nil {
		return c.app.fail(err)
	}

	out := c.app.Stdout
	fmt.Fprintf(out, "Integrity check: %s\n", strings.Join(report.IntegrityMessages, "; "))
	fmt.Fprintf(out, "Foreign key violations: %d\n", report.ForeignKeyViolations)
	for _, issue := range report.InvalidRows {
		fmt.Fprintf(out, "Invalid %s row %d: %s\n", issue.Table, issue.ID, strings.Join(issue.Messages, "; "))
	}
	for _, txn := range report.TotalMismatches {
		fmt.Fprintf(out, "Stock row %d total %s differs from %s\n", txn.ID, txn.TotalPrice.StringFixed(2), txn.ComputeTotal().StringFixed(2))
	}
	if !report.OK() {
		fmt.Fprintln(out, "Problems found. Run recalculate to fix stock totals.")
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, "All checks passed.")
	return subcommands.ExitSuccess
}

type recalculateCmd struct {
	app *App
}

func (*recalculateCmd) Name() string     { return "recalculate" }
func (*recalculateCmd) Synopsis() string { return "recompute drifted stock totals" }
func (*recalculateCmd) Usage() string {
	return `recalculate

  Rewrites every stock total that no longer equals quantity * unit price.
`
}

func (*recalculateCmd) SetFlags(_ *flag.FlagSet) {}

func (c *recalculateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	updated, err := c.app.Services.Maintenance.RecalculateTotals(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Stdout, "Updated %d stock totals\n", updated)
	return subcommands.ExitSuccess
}
