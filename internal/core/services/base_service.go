package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Events portssvc.EventPublisher
	Clock  func() time.Time
	NewID  func() string
}

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithEventPublisher sets where committed events are sent.
func WithEventPublisher(p portssvc.EventPublisher) Option {
	return func(b *BaseService) { b.Events = p }
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(b *BaseService) { b.Clock = clock }
}

// WithIDGenerator overrides how entity ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(b *BaseService) { b.NewID = gen }
}

func newBaseService(opts ...Option) BaseService {
	b := BaseService{
		Clock: time.Now,
		NewID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now returns the current UTC time truncated to what the store keeps.
func (s *BaseService) Now() time.Time {
	return s.Clock().UTC().Truncate(time.Microsecond)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Publish hands a committed event to the configured publisher, if any.
func (s *BaseService) Publish(ctx context.Context, event domain.LedgerEvent) {
	if s.Events == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.Now()
	}
	s.Events.Publish(ctx, event)
}

// logRefusal logs expected refusals at warn level and everything else as an error.
func (s *BaseService) logRefusal(ctx context.Context, err error, msg string, keyvals ...any) {
	var (
		state        *apperrors.StateError
		insufficient *apperrors.InsufficientStockError
	)
	switch {
	case errors.As(err, &state), errors.As(err, &insufficient),
		errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrTaggingNotRequired):
		args := append([]any{slog.String("reason", err.Error())}, keyvals...)
		s.GetLogger(ctx).Warn(msg, args...)
	default:
		s.LogError(ctx, err, msg, keyvals...)
	}
}
