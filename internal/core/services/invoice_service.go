package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/platform/config"
	"github.com/SscSPs/finance_manager/internal/utils/accounting"
	"github.com/google/uuid"
)

// invoice numbers end up in file names
var invoiceNumberPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// numbers of this form come from the counter only
var allocatedNumberPattern = regexp.MustCompile(`(?i)^INV-[0-9]+$`)

type invoiceService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	stockRepo    portsrepo.StockReader
	renderer     portssvc.InvoiceRenderer
	numbering    string
	now          func() time.Time
	newID        func() string

	// held from allocating a sequential number until its document is written
	mu sync.Mutex
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceRenderer sets the document writer. Without one invoices are computed but not rendered.
func WithInvoiceRenderer(renderer portssvc.InvoiceRenderer) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.renderer = renderer
	}
}

// WithInvoiceNumbering selects config.NumberingSequential or config.NumberingRandom.
func WithInvoiceNumbering(numbering string) InvoiceServiceOption {
	return func(s *invoiceService) {
		if numbering != "" {
			s.numbering = numbering
		}
	}
}

// WithInvoiceClock overrides the clock used for the default invoice date.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// WithInvoiceIDSource overrides the generator of random invoice numbers.
func WithInvoiceIDSource(newID func() string) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.newID = newID
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(settingsRepo portsrepo.SettingsRepositoryFacade, stockRepo portsrepo.StockReader, options ...InvoiceServiceOption) portssvc.InvoiceService {
	svc := &invoiceService{
		settingsRepo: settingsRepo,
		stockRepo:    stockRepo,
		numbering:    config.NumberingSequential,
		now:          time.Now,
		newID:        uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.InvoiceService = (*invoiceService)(nil)

func (s *invoiceService) GenerateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.GeneratedInvoice, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read settings for invoice")
		return nil, fmt.Errorf("failed to read invoice settings: %w", err)
	}

	items, err := s.lineItems(ctx, req)
	if err != nil {
		return nil, err
	}

	taxRate := settings.TaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	date, malformed := parseDate(req.Date)
	if date.IsZero() && !malformed {
		y, m, d := s.now().Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	invoice := domain.Invoice{
		Number:          strings.TrimSpace(req.Number),
		Date:            date,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		Items:           items,
		TaxRate:         taxRate,
	}

	messages := invoice.Validate()
	if malformed {
		messages = append(messages, dateFormatMessage)
	}
	if invoice.Number != "" && !invoiceNumberPattern.MatchString(invoice.Number) {
		messages = append(messages, "Invoice number may only contain letters, digits, '-' and '_'")
	}
	if s.numbering == config.NumberingSequential && allocatedNumberPattern.MatchString(invoice.Number) {
		messages = append(messages, "Invoice numbers like INV-000001 are assigned automatically")
	}
	if len(messages) > 0 {
		return nil, s.Rejected(ctx, "invoice", messages)
	}

	// numbers are allocated only for invoices that passed validation
	var allocated int64
	if invoice.Number == "" {
		if s.numbering == config.NumberingSequential {
			s.mu.Lock()
			defer s.mu.Unlock()
		}
		number, n, err := s.nextNumber(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to allocate invoice number")
			return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
		}
		invoice.Number, allocated = number, n
	}

	generated := &domain.GeneratedInvoice{
		Invoice:       invoice,
		InvoiceTotals: accounting.ComputeInvoiceTotals(invoice.Items, invoice.TaxRate),
		Company:       *settings,
	}

	if s.renderer != nil {
		path, err := s.renderer.Render(ctx, *generated)
		if err != nil {
			s.LogError(ctx, err, "Invoice generation failed", slog.String("number", invoice.Number))
			if allocated > 0 {
				s.releaseNumber(ctx, allocated)
			}
			var renderErr *apperrors.RenderError
			if !errors.As(err, &renderErr) {
				err = apperrors.NewRenderError("failed to render invoice "+invoice.Number, err)
			}
			return nil, err
		}
		generated.FilePath = path
	}

	s.LogInfo(ctx, "Invoice generated",
		slog.String("number", invoice.Number),
		slog.String("total", generated.Total.String()),
		slog.String("path", generated.FilePath))
	return generated, nil
}

// lineItems takes explicit items first, then one item per referenced stock row.
func (s *invoiceService) lineItems(ctx context.Context, req dto.CreateInvoiceRequest) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(req.Items)+len(req.StockIDs))
	for _, item := range req.Items {
		items = append(items, domain.LineItem{
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	if len(req.StockIDs) == 0 {
		return items, nil
	}

	stock, err := s.stockRepo.FindStockByIDs(ctx, req.StockIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, s.Rejected(ctx, "invoice", []string{err.Error()})
		}
		s.LogError(ctx, err, "Failed to read stock for invoice")
		return nil, fmt.Errorf("failed to read invoice stock: %w", err)
	}
	for _, txn := range stock {
		items = append(items, domain.LineItem{
			Description: txn.ItemName,
			Quantity:    txn.Quantity,
			Price:       txn.UnitPrice,
		})
	}
	return items, nil
}

// nextNumber returns the number to use and, for sequential numbering, the
// counter value it came from.
func (s *invoiceService) nextNumber(ctx context.Context) (string, int64, error) {
	if s.numbering == config.NumberingRandom {
		return s.newID()[:8], 0, nil
	}
	n, err := s.settingsRepo.AllocateInvoiceNumber(ctx)
	if err != nil {
		return "", 0, err
	}
	return FormatInvoiceNumber(n), n, nil
}

// releaseNumber hands back a number whose document was never written.
func (s *invoiceService) releaseNumber(ctx context.Context, n int64) {
	released, err := s.settingsRepo.ReleaseInvoiceNumber(ctx, n)
	if err != nil {
		s.LogError(ctx, err, "Failed to release invoice number", slog.String("number", FormatInvoiceNumber(n)))
		return
	}
	if !released {
		s.GetLogger(ctx).Warn("Invoice number left unused", slog.String("number", FormatInvoiceNumber(n)))
	}
}

// FormatInvoiceNumber renders a counter value, e.g. 1 as INV-000001.
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("INV-%06d", n)
}
