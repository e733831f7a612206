package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger adapts slog to the cron.Logger interface so scheduler events,
// in particular skipped overlapping runs, land in the application log.
type cronLogger struct {
	logger *slog.Logger
}

func newCronLogger(logger *slog.Logger) cron.Logger {
	return cronLogger{logger: logger}
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.InfoContext(context.Background(), msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{"error", err}, keysAndValues...)
	l.logger.ErrorContext(context.Background(), msg, args...)
}
