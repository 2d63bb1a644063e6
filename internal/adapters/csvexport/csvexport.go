// Package csvexport writes export tables as CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SscSPs/finance_manager/internal/core/domain"
)

// Write emits the header row followed by every data row.
func Write(w io.Writer, table *domain.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", table.Name, err)
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", table.Name, err)
	}
	return nil
}

// WriteFile writes table to path, adding a .csv extension when path has none.
// It returns the path written.
func WriteFile(path string, table *domain.Table) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".csv"
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Write(f, table); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}
	return path, nil
}
