package middleware

import (
	"context"
	"errors"
	"log/slog"

	"addressbook/internal/domain"
	"addressbook/internal/transport/console"
	"addressbook/pkg/logx"
)

// InputError отдаёт пользователю текст ошибки обработчика вместо самой
// ошибки, чтобы сессия продолжалась. ErrExit пропускается как есть.
func InputError(next console.HandlerFunc) console.HandlerFunc {
	return func(ctx context.Context, args []string) (string, error) {
		reply, err := next(ctx, args)
		if err == nil || errors.Is(err, console.ErrExit) {
			return reply, err
		}

		if code, ok := domain.GetCode(err); ok {
			logger(ctx).Info("command rejected", slog.Any(logx.FieldErrorCode, code), logx.Error(err))
		} else {
			logger(ctx).Error("command failed", logx.Error(err))
		}

		return domain.UserMessage(err), nil
	}
}
