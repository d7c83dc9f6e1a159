package sdk

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the subset of *zap.SugaredLogger the pull client and the connectors log through.
type Logger interface {
	Infof(template string, args ...any)
	Infow(msg string, keysAndValues ...any)
	Debugw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

var _ Logger = (*zap.SugaredLogger)(nil)

type contextLoggerValueT string

const ContextLoggerValue = contextLoggerValueT("oracle-pull-logger")

// ContextWithLogger returns a copy of ctx carrying logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, ContextLoggerValue, logger)
}

// LoggerFrom returns the logger stored in ctx, or a production zap logger.
func LoggerFrom(ctx context.Context) Logger {
	value := ctx.Value(ContextLoggerValue)
	logger, ok := value.(Logger)
	if !ok {
		logger = zap.Must(zap.NewProduction()).Sugar()
	}

	return logger
}
