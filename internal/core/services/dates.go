package services

import (
	"strings"
	"time"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/models"
)

const (
	dateRequiredMessage = "Date is required"
	dateFormatMessage   = "Date must use the YYYY-MM-DD format"
)

// parseDate reads a YYYY-MM-DD value. An empty value gives the zero time;
// malformed reports whether a non-empty value could not be parsed.
func parseDate(value string) (t time.Time, malformed bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, true
	}
	return t, false
}

// withDateMessage swaps the required-date message for a format message when
// the date was supplied but could not be parsed.
func withDateMessage(messages []string, malformed bool) []string {
	if !malformed {
		return messages
	}
	for i, msg := range messages {
		if msg == dateRequiredMessage {
			messages[i] = dateFormatMessage
			return messages
		}
	}
	return append(messages, dateFormatMessage)
}

// parseRange reads optional from/to filter bounds.
func parseRange(from, to string) (*time.Time, *time.Time, error) {
	var messages []string
	var fromPtr, toPtr *time.Time
	if t, malformed := parseDate(from); malformed {
		messages = append(messages, "From date must use the YYYY-MM-DD format")
	} else if !t.IsZero() {
		fromPtr = &t
	}
	if t, malformed := parseDate(to); malformed {
		messages = append(messages, "To date must use the YYYY-MM-DD format")
	} else if !t.IsZero() {
		toPtr = &t
	}
	if fromPtr != nil && toPtr != nil && toPtr.Before(*fromPtr) {
		messages = append(messages, "From date must not be after To date")
	}
	if len(messages) > 0 {
		return nil, nil, apperrors.NewValidationError(messages)
	}
	return fromPtr, toPtr, nil
}

func tokenPtr(token string) *string {
	if token == "" {
		return nil
	}
	return &token
}
