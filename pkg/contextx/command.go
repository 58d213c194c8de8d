package contextx

import (
	"context"
	"fmt"
)

type contextKeyCommand struct{}

// WithCommand запоминает имя выполняемой команды интерпретатора.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, contextKeyCommand{}, command)
}

func CommandFromContext(ctx context.Context) (string, error) {
	command, ok := ctx.Value(contextKeyCommand{}).(string)
	if !ok {
		return "", fmt.Errorf("command: %w", ErrNoValue)
	}

	return command, nil
}
