package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bizledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock    func() time.Time
	location *time.Location
}

// ServiceOption is a functional option shared by every service
type ServiceOption func(*BaseService)

// WithClock overrides the source of the current time.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLocation sets the location in which calendar dates and months are interpreted.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.location = loc
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{clock: time.Now, location: time.Local}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time in the service location.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now().In(s.Location())
	}
	return s.clock().In(s.Location())
}

// Location returns the service location.
func (s *BaseService) Location() *time.Location {
	if s.location == nil {
		return time.Local
	}
	return s.location
}

// Today returns local midnight of the current day.
func (s *BaseService) Today() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Location())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
