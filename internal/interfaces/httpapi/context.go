package httpapi

import (
	"context"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type contextKey string

const loggerContextKey contextKey = "request_logger"

func withLogger(ctx context.Context, logger *logging.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// loggerFromContext returns the request-scoped logger set by RequestLogging,
// or the process default outside a request.
func loggerFromContext(ctx context.Context) *logging.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*logging.Logger); ok && logger != nil {
		return logger
	}
	return logging.Default()
}
