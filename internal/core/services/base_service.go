package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Rejected logs the violations of an entity and wraps them in a ValidationError.
func (s *BaseService) Rejected(ctx context.Context, entity string, messages []string) error {
	s.GetLogger(ctx).Warn("Validation failed",
		slog.String("entity", entity),
		slog.Any("messages", messages))
	return apperrors.NewValidationError(messages)
}
