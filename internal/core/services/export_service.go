package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/utils/mapping"
)

// Export view names.
const (
	ViewStock      = "stock"
	ViewIncome     = "income"
	ViewExpense    = "expense"
	ViewCategories = "categories"
)

type exportService struct {
	BaseService
	stockRepo    portsrepo.StockReader
	recordRepo   portsrepo.FinancialRecordReader
	categoryRepo portsrepo.CategoryReader
}

func NewExportService(stockRepo portsrepo.StockReader, recordRepo portsrepo.FinancialRecordReader, categoryRepo portsrepo.CategoryReader) portssvc.ExportService {
	return &exportService{
		stockRepo:    stockRepo,
		recordRepo:   recordRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.ExportService = (*exportService)(nil)

func (s *exportService) Views() []string {
	return []string{ViewStock, ViewIncome, ViewExpense, ViewCategories}
}

func (s *exportService) Table(ctx context.Context, view string) (*domain.Table, error) {
	var (
		table *domain.Table
		err   error
	)
	switch view {
	case ViewStock:
		table, err = s.stockTable(ctx)
	case ViewIncome:
		table, err = s.recordTable(ctx, domain.Income)
	case ViewExpense:
		table, err = s.recordTable(ctx, domain.Expense)
	case ViewCategories:
		table, err = s.categoryTable(ctx)
	default:
		return nil, s.Rejected(ctx, "export", []string{fmt.Sprintf("Unknown export view %q", view)})
	}
	if err != nil {
		s.LogError(ctx, err, "Export failed")
		return nil, fmt.Errorf("failed to export %s: %w", view, err)
	}
	return table, nil
}

func (s *exportService) stockTable(ctx context.Context) (*domain.Table, error) {
	stock, err := s.stockRepo.ListAllStock(ctx)
	if err != nil {
		return nil, err
	}
	table := &domain.Table{
		Name:   ViewStock,
		Header: []string{"ID", "Date", "Type", "Vendor", "Item", "Quantity", "Unit Price", "Total Price"},
		Rows:   make([][]string, 0, len(stock)),
	}
	for _, txn := range stock {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(txn.ID, 10),
			mapping.ToModelDate(txn.Date),
			string(txn.TransactionType),
			txn.VendorName,
			txn.ItemName,
			txn.Quantity.String(),
			txn.UnitPrice.StringFixed(2),
			txn.TotalPrice.StringFixed(2),
		})
	}
	return table, nil
}

func (s *exportService) recordTable(ctx context.Context, recordType domain.RecordType) (*domain.Table, error) {
	records, err := s.recordRepo.ListAllRecords(ctx, domain.RecordFilter{Type: recordType})
	if err != nil {
		return nil, err
	}
	table := &domain.Table{
		Name:   string(recordType),
		Header: []string{"ID", "Date", "Category", "Description", "Amount", "Verified"},
		Rows:   make([][]string, 0, len(records)),
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(r.ID, 10),
			mapping.ToModelDate(r.Date),
			r.Category,
			r.Description,
			r.Amount.StringFixed(2),
			strconv.FormatBool(r.Verified),
		})
	}
	return table, nil
}

func (s *exportService) categoryTable(ctx context.Context) (*domain.Table, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, "")
	if err != nil {
		return nil, err
	}
	table := &domain.Table{
		Name:   ViewCategories,
		Header: []string{"ID", "Type", "Name"},
		Rows:   make([][]string, 0, len(categories)),
	}
	for _, c := range categories {
		table.Rows = append(table.Rows, []string{strconv.FormatInt(c.ID, 10), string(c.Type), c.Name})
	}
	return table, nil
}
