package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"addressbook/internal/transport/console"
	"addressbook/pkg/contextx"
	"addressbook/pkg/logx"
)

// Logging кладёт в ctx логгер с командой и сессией и пишет в debug каждую
// команду. Телефоны и даты в аргументах маскируются.
func Logging(sensitiveDataMasker logx.SensitiveDataMaskerInterface) console.Middleware {
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(ctx context.Context, args []string) (string, error) {
			command, err := contextx.CommandFromContext(ctx)
			if err != nil {
				logger(ctx).Error("contextx.CommandFromContext", logx.Error(err))
			}

			attrs := []any{slog.String(logx.FieldCommand, command)}

			if sessionID, err := contextx.SessionIDFromContext(ctx); err == nil {
				attrs = append(attrs, logx.Stringer(logx.FieldSessionID, sessionID))
			}

			ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

			start := time.Now()
			reply, err := next(ctx, args)

			logger(ctx).Debug(
				"command handled",
				slog.String(logx.FieldArgs, string(sensitiveDataMasker.Mask([]byte(strings.Join(args, " "))))),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
				logx.Error(err),
			)

			return reply, err
		}
	}
}
