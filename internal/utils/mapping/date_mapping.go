package mapping

import (
	"time"

	"github.com/SscSPs/finance_manager/internal/models"
)

// ToModelDate formats a ledger date for storage.
func ToModelDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

// ToDomainDate parses a stored ledger date. Values that do not start with a
// YYYY-MM-DD date map to the zero time, which validation reports as missing.
func ToDomainDate(s string) time.Time {
	if len(s) > len(models.DateLayout) {
		s = s[:len(models.DateLayout)]
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
