package dto

import (
	"time"

	"github.com/SscSPs/finance_manager/internal/models"
)

// ErrorResponse is the body of every failed request. Validation failures
// carry every message in Errors.
type ErrorResponse struct {
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}
