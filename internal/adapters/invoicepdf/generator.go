package invoicepdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/middleware"
)

// Generator writes invoice documents into a directory.
type Generator struct {
	renderer     PDFRenderer
	outputDir    string
	currencyCode string
}

// NewGenerator creates a Generator writing Invoice_<number>.pdf files to outputDir.
func NewGenerator(renderer PDFRenderer, outputDir, currencyCode string) *Generator {
	return &Generator{renderer: renderer, outputDir: outputDir, currencyCode: currencyCode}
}

var _ portssvc.InvoiceRenderer = (*Generator)(nil)

// FileName returns the document name for an invoice number.
func FileName(number string) string {
	return "Invoice_" + number + ".pdf"
}

// Render builds the document and returns the path it was written to. The
// file appears only once it is complete and an existing invoice file is
// never replaced.
func (g *Generator) Render(ctx context.Context, inv domain.GeneratedInvoice) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	target := filepath.Join(g.outputDir, FileName(inv.Number))
	if _, err := os.Stat(target); err == nil {
		return "", alreadyWritten(inv.Number)
	}

	html, err := BuildHTML(inv, g.currencyCode)
	if err != nil {
		return "", apperrors.NewRenderError("failed to build invoice document", err)
	}

	pdf, err := g.renderer.RenderPDF(ctx, html)
	if err != nil {
		return "", apperrors.NewRenderError("failed to convert invoice "+inv.Number+" to PDF", err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", apperrors.NewRenderError("failed to create invoice directory", err)
	}

	tmp, err := os.CreateTemp(g.outputDir, ".invoice-*.pdf")
	if err != nil {
		return "", apperrors.NewRenderError("failed to create invoice file", err)
	}
	tmpName := tmp.Name()
	_, writeErr := tmp.Write(pdf)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		return "", apperrors.NewRenderError("failed to write invoice file", firstErr(writeErr, closeErr))
	}
	// a hard link fails instead of replacing a file created in the meantime
	err = os.Link(tmpName, target)
	_ = os.Remove(tmpName)
	if errors.Is(err, fs.ErrExist) {
		return "", alreadyWritten(inv.Number)
	}
	if err != nil {
		return "", apperrors.NewRenderError(fmt.Sprintf("failed to move invoice into %s", target), err)
	}

	logger.Debug("Invoice document written", slog.String("path", target), slog.Int("bytes", len(pdf)))
	return target, nil
}

func alreadyWritten(number string) error {
	return apperrors.NewRenderError("invoice "+number+" was already written", apperrors.ErrDuplicate)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
