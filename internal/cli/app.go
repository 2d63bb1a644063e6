// Package cli implements the finance_manager subcommands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/core/services"
	"github.com/SscSPs/finance_manager/internal/platform/config"
	"github.com/SscSPs/finance_manager/internal/repositories/database/sqlite"
	"github.com/google/subcommands"
)

// App carries what every subcommand needs. As a CLI it lives for one
// command, so commands share it by pointer.
type App struct {
	Config   *config.Config
	Store    *sqlite.Store
	Services *portssvc.ServiceContainer
	Logger   *slog.Logger
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewApp wires repositories and services over an initialized store.
// renderer may be nil, in which case invoices are computed but not written.
func NewApp(cfg *config.Config, store *sqlite.Store, renderer portssvc.InvoiceRenderer, logger *slog.Logger) *App {
	return &App{
		Config:   cfg,
		Store:    store,
		Services: services.NewServiceContainer(cfg, sqlite.NewRepositoryProvider(store), renderer),
		Logger:   logger,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// Register the subcommands.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&serveCmd{app: app}, "server")

	c.Register(&addStockCmd{app: app}, "stock")
	c.Register(&listStockCmd{app: app}, "stock")

	c.Register(&addRecordCmd{app: app}, "ledger")
	c.Register(&listRecordsCmd{app: app}, "ledger")
	c.Register(&markVerifiedCmd{app: app}, "ledger")
	c.Register(&categoriesCmd{app: app}, "ledger")
	c.Register(&addCategoryCmd{app: app}, "ledger")

	c.Register(&invoiceCmd{app: app}, "invoices")
	c.Register(&settingsCmd{app: app}, "invoices")
	c.Register(&updateSettingsCmd{app: app}, "invoices")

	c.Register(&profitLossCmd{app: app}, "reports")
	c.Register(&exportCmd{app: app}, "reports")

	c.Register(&initCmd{app: app}, "maintenance")
	c.Register(&backupCmd{app: app}, "maintenance")
	c.Register(&verifyCmd{app: app}, "maintenance")
	c.Register(&recalculateCmd{app: app}, "maintenance")
}

// fail prints err for the user. Validation failures list every message.
func (a *App) fail(err error) subcommands.ExitStatus {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		fmt.Fprintln(a.Stderr, "Invalid input:")
		for _, msg := range vErr.Messages {
			fmt.Fprintf(a.Stderr, "  - %s\n", msg)
		}
		return subcommands.ExitFailure
	}
	fmt.Fprintf(a.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func (a *App) usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(a.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}
