package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type observableLoggerKey struct{}

// WithObservableLogger returns a child context carrying logger.
func WithObservableLogger(ctx context.Context, logger *ObservableLogger) context.Context {
	return context.WithValue(ctx, observableLoggerKey{}, logger)
}

// FromObservable returns the observable logger carried by ctx, or nil.
func FromObservable(ctx context.Context) *ObservableLogger {
	logger, _ := ctx.Value(observableLoggerKey{}).(*ObservableLogger)
	return logger
}

// From returns the charm logger behind the observable logger carried by
// ctx, or nil.
func From(ctx context.Context) *log.Logger {
	if logger := FromObservable(ctx); logger != nil {
		return logger.Logger()
	}
	return nil
}
