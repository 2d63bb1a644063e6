package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/handlers"
	"github.com/SscSPs/finance_manager/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	stock       *MockStockService
	ledger      *MockLedgerService
	category    *MockCategoryService
	settings    *MockSettingsService
	invoice     *MockInvoiceService
	reporting   *MockReportingService
	maintenance *MockMaintenanceService
	export      *MockExportService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.stock = new(MockStockService)
	suite.ledger = new(MockLedgerService)
	suite.category = new(MockCategoryService)
	suite.settings = new(MockSettingsService)
	suite.invoice = new(MockInvoiceService)
	suite.reporting = new(MockReportingService)
	suite.maintenance = new(MockMaintenanceService)
	suite.export = new(MockExportService)

	cfg := &config.Config{CurrencyCode: "USD", InvoiceRateLimit: "2-M", IsProduction: true}
	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Stock:       suite.stock,
		Ledger:      suite.ledger,
		Category:    suite.category,
		Settings:    suite.settings,
		Invoice:     suite.invoice,
		Reporting:   suite.reporting,
		Maintenance: suite.maintenance,
		Export:      suite.export,
	}))
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateStock_Created() {
	suite.stock.On("RecordStock", mock.Anything, mock.MatchedBy(func(req dto.CreateStockRequest) bool {
		return req.ItemName == "Widget" && req.Quantity.Equal(decimal.NewFromInt(3))
	})).Return(&domain.StockTransaction{
		ID:              1,
		Date:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TransactionType: domain.Purchase,
		VendorName:      "Acme",
		ItemName:        "Widget",
		Quantity:        decimal.NewFromInt(3),
		UnitPrice:       decimal.NewFromInt(10),
		TotalPrice:      decimal.NewFromInt(30),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stock", map[string]any{
		"date": "2024-03-01", "transactionType": "Purchase", "vendorName": "Acme",
		"itemName": "Widget", "quantity": "3", "unitPrice": 10,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.StockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-03-01", resp.Date)
	suite.True(decimal.NewFromInt(30).Equal(resp.TotalPrice))
	suite.stock.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateStock_ValidationListsMessages() {
	messages := []string{"Vendor name cannot be empty", "Quantity must be positive"}
	suite.stock.On("RecordStock", mock.Anything, mock.Anything).Return(nil, apperrors.NewValidationError(messages)).Once()

	w := suite.do(http.MethodPost, "/api/v1/stock", map[string]any{"date": "2024-03-01"})

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(messages, resp.Errors)
}

func (suite *HandlersTestSuite) TestCreateStock_Duplicate() {
	suite.stock.On("RecordStock", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/stock", map[string]any{"date": "2024-03-01"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestCreateStock_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stock", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.stock.AssertNotCalled(suite.T(), "RecordStock", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListStock_RejectsOversizedPage() {
	w := suite.do(http.MethodGet, "/api/v1/stock?limit=1000", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListStock_DefaultsLimit() {
	next := "abc"
	suite.stock.On("ListStock", mock.Anything, dto.ListStockParams{TransactionType: "Sale", Limit: 20}).
		Return([]domain.StockTransaction{{ID: 2}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stock?type=Sale", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListStockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Items, 1)
	suite.Equal(&next, resp.NextToken)
}

func (suite *HandlersTestSuite) TestGetRecord_NotFound() {
	suite.ledger.On("GetRecord", mock.Anything, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/records/42", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestVerifyRecord_DefaultsToTrue() {
	suite.ledger.On("MarkVerified", mock.Anything, int64(3), true).
		Return(&domain.FinancialRecord{ID: 3, Type: domain.Income, Verified: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/records/3/verify", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestVerifyRecord_Clears() {
	suite.ledger.On("MarkVerified", mock.Anything, int64(3), false).
		Return(&domain.FinancialRecord{ID: 3, Type: domain.Income}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/records/3/verify", map[string]any{"verified": false})

	suite.Equal(http.StatusOK, w.Code)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestProfitLoss() {
	suite.reporting.On("ProfitAndLoss", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return(&domain.PAndLReport{
		TotalIncome:  decimal.NewFromInt(300),
		TotalExpense: decimal.NewFromInt(500),
		NetProfit:    decimal.NewFromInt(-200),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/profit-loss", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProfitLossResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Loss: $200.00", resp.Label)
}

func (suite *HandlersTestSuite) TestProfitLoss_InvalidRange() {
	w := suite.do(http.MethodGet, "/api/v1/reports/profit-loss?from=2024-02-01&to=2024-01-01", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reporting.AssertNotCalled(suite.T(), "ProfitAndLoss", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateInvoice_RateLimited() {
	suite.invoice.On("GenerateInvoice", mock.Anything, mock.Anything).Return(&domain.GeneratedInvoice{
		Invoice:       domain.Invoice{Number: "INV-000001", CustomerName: "Jane"},
		InvoiceTotals: domain.InvoiceTotals{Total: decimal.NewFromInt(33)},
	}, nil).Twice()
	body := map[string]any{"customerName": "Jane"}

	first := suite.do(http.MethodPost, "/api/v1/invoices", body)
	second := suite.do(http.MethodPost, "/api/v1/invoices", body)
	third := suite.do(http.MethodPost, "/api/v1/invoices", body)

	suite.Equal(http.StatusCreated, first.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(first.Body.Bytes(), &resp))
	suite.Equal("$33.00", resp.TotalDisplay)
	suite.Equal(http.StatusCreated, second.Code)
	suite.Equal(http.StatusTooManyRequests, third.Code)
	suite.invoice.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateInvoice_RenderFailure() {
	suite.invoice.On("GenerateInvoice", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewRenderError("failed to render invoice INV-000001", nil)).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices", map[string]any{"customerName": "Jane"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Invoice generation failed")
}

func (suite *HandlersTestSuite) TestCreateInvoice_NumberAlreadyWritten() {
	suite.invoice.On("GenerateInvoice", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewRenderError("invoice A-17 was already written", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices", map[string]any{"customerName": "Jane", "number": "A-17"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestBackup_Failure() {
	suite.maintenance.On("Backup", mock.Anything).Return("", apperrors.ErrBackup).Once()

	w := suite.do(http.MethodPost, "/api/v1/maintenance/backup", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "database")
}

func (suite *HandlersTestSuite) TestVerify() {
	suite.maintenance.On("Verify", mock.Anything).Return(&domain.VerificationReport{IntegrityMessages: []string{"ok"}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/maintenance/verify", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"ok":true`)
}

func (suite *HandlersTestSuite) TestExport_StreamsCSV() {
	suite.export.On("Table", mock.Anything, "categories").Return(&domain.Table{
		Name:   "categories",
		Header: []string{"ID", "Type", "Name"},
		Rows:   [][]string{{"1", "income", "Sales"}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/export/categories", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), `filename="categories.csv"`)
	suite.Equal("ID,Type,Name\n1,income,Sales\n", w.Body.String())
}

func (suite *HandlersTestSuite) TestExport_UnknownView() {
	suite.export.On("Table", mock.Anything, "vendors").
		Return(nil, apperrors.NewValidationError([]string{`Unknown export view "vendors"`})).Once()

	w := suite.do(http.MethodGet, "/api/v1/export/vendors", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestSettingsRoundTrip() {
	suite.settings.On("GetSettings", mock.Anything).Return(&domain.Settings{CompanyName: "My Business", InvoiceCounter: 1}, nil).Once()
	suite.settings.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(req dto.UpdateSettingsRequest) bool {
		return req.CompanyName == "Corner Shop"
	})).Return(&domain.Settings{CompanyName: "Corner Shop", InvoiceCounter: 1}, nil).Once()

	get := suite.do(http.MethodGet, "/api/v1/settings", nil)
	put := suite.do(http.MethodPut, "/api/v1/settings", map[string]any{"companyName": "Corner Shop", "taxRate": "0.1"})

	suite.Equal(http.StatusOK, get.Code)
	suite.Equal(http.StatusOK, put.Code)
	suite.Contains(put.Body.String(), "Corner Shop")
}

func (suite *HandlersTestSuite) TestCategories() {
	suite.category.On("ListCategories", mock.Anything, "income").Return(domain.DefaultCategories[:2], nil).Once()
	suite.category.On("CreateCategory", mock.Anything, dto.CreateCategoryRequest{Type: "expense", Name: "Rent"}).
		Return(nil, apperrors.ErrDuplicate).Once()

	list := suite.do(http.MethodGet, "/api/v1/categories?type=income", nil)
	create := suite.do(http.MethodPost, "/api/v1/categories", map[string]any{"type": "expense", "name": "Rent"})

	suite.Equal(http.StatusOK, list.Code)
	suite.Contains(list.Body.String(), "Services")
	suite.Equal(http.StatusConflict, create.Code)
}
