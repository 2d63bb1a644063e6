package services

import (
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// renderer may be nil, in which case invoices are computed without writing a document.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderer portssvc.InvoiceRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Stock = NewStockService(repos.StockRepo)
	container.Ledger = NewLedgerService(repos.RecordRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Reporting = NewReportingService(repos.RecordRepo)
	container.Maintenance = NewMaintenanceService(repos.MaintenanceRepo, repos.StockRepo, repos.RecordRepo)
	container.Export = NewExportService(repos.StockRepo, repos.RecordRepo, repos.CategoryRepo)

	invoiceOptions := []InvoiceServiceOption{WithInvoiceNumbering(cfg.InvoiceNumbering)}
	if renderer != nil {
		invoiceOptions = append(invoiceOptions, WithInvoiceRenderer(renderer))
	}
	container.Invoice = NewInvoiceService(repos.SettingsRepo, repos.StockRepo, invoiceOptions...)

	return container
}
