package logging

import (
	"context"
	"log/slog"

	"github.com/opus10/footing-hooks/pkg/domain/types"
)

type ctxRunIDKey struct{}

// CtxRunID returns the run ID from context. If it is not set, a new run ID is
// generated and returned with a context carrying it.
func CtxRunID(ctx context.Context) (types.RunID, context.Context) {
	if id, ok := ctx.Value(ctxRunIDKey{}).(types.RunID); ok {
		return id, ctx
	}

	newID := types.NewRunID()
	return newID, context.WithValue(ctx, ctxRunIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// WithRun attaches a run ID and a logger tagged with it to ctx.
func WithRun(ctx context.Context) context.Context {
	runID, ctx := CtxRunID(ctx)
	return With(ctx, Default().With(slog.String("run_id", string(runID))))
}
