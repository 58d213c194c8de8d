package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"addressbook/internal/domain"
	"addressbook/internal/transport/console"
	"addressbook/pkg/errcodes"
	"addressbook/pkg/logx"
)

const internalErrorMessage = "Internal error, the command was not executed."

// Recovery превращает панику обработчика в ошибку InternalServerError.
func Recovery(next console.HandlerFunc) console.HandlerFunc {
	return func(ctx context.Context, args []string) (reply string, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				err = domain.WrapError(fmt.Errorf("panic: %v", rec), errcodes.InternalServerError, internalErrorMessage)
			}
		}()

		return next(ctx, args)
	}
}
