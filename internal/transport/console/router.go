package console

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/samber/lo"

	"addressbook/pkg/contextx"
)

var (
	// ErrExit возвращается обработчиком, после ответа которого сессия завершается.
	ErrExit = errors.New("exit requested")
	// ErrUnknownCommand возвращает Router без обработчика NotFound.
	ErrUnknownCommand = errors.New("unknown command")
)

// HandlerFunc обрабатывает одну команду и возвращает строку ответа.
type HandlerFunc func(ctx context.Context, args []string) (string, error)

type Middleware func(next HandlerFunc) HandlerFunc

type Router struct {
	routes      map[string]HandlerFunc
	middlewares []Middleware
	notFound    HandlerFunc
}

func NewRouter() *Router {
	return &Router{
		routes: make(map[string]HandlerFunc),
	}
}

// Use добавляет middleware. Первая добавленная оборачивает все остальные.
func (r *Router) Use(middlewares ...Middleware) {
	r.middlewares = append(r.middlewares, middlewares...)
}

// Handle регистрирует обработчик команды. Имя команды регистронезависимо.
func (r *Router) Handle(command string, handler HandlerFunc) {
	r.routes[strings.ToLower(command)] = handler
}

func (r *Router) NotFound(handler HandlerFunc) {
	r.notFound = handler
}

func (r *Router) Commands() []string {
	commands := lo.Keys(r.routes)
	slices.Sort(commands)

	return commands
}

// Dispatch выполняет команду через цепочку middleware.
func (r *Router) Dispatch(ctx context.Context, command string, args []string) (string, error) {
	command = strings.ToLower(command)

	handler, ok := r.routes[command]
	if !ok {
		handler = r.notFound
	}

	if handler == nil {
		return "", ErrUnknownCommand
	}

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i](handler)
	}

	return handler(contextx.WithCommand(ctx, command), args)
}
