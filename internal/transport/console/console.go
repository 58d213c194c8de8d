package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"addressbook/internal/domain"
	"addressbook/internal/transport/console/view"
	"addressbook/pkg/logx"
)

const DefaultPrompt = "Enter a command: "

// Console — интерактивный цикл: приглашение, чтение строки, вызов команды,
// печать ответа.
type Console struct {
	router *Router
	in     io.Reader
	out    io.Writer
	prompt string
}

type Option func(*Console)

func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = prompt
	}
}

func New(router *Router, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		router: router,
		in:     in,
		out:    out,
		prompt: DefaultPrompt,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type inputLine struct {
	text string
	err  error
}

// Run работает до команды выхода, конца ввода или отмены ctx.
// Конец ввода не считается ошибкой.
func (c *Console) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	lines := c.readLines(done)

	if err := c.println(view.Welcome); err != nil {
		return err
	}

	for {
		if _, err := fmt.Fprint(c.out, c.prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		var line inputLine

		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				logger(ctx).Info("input closed")
				return nil
			}
			line = l
		}

		if line.err != nil {
			return fmt.Errorf("read input: %w", line.err)
		}

		stop, err := c.execute(ctx, line.text)
		if err != nil {
			return err
		}

		if stop {
			return nil
		}
	}
}

func (c *Console) execute(ctx context.Context, line string) (stop bool, err error) {
	command, args, ok := ParseInput(line)
	if !ok {
		return false, c.println(view.EmptyInput)
	}

	reply, err := c.router.Dispatch(ctx, command, args)

	switch {
	case errors.Is(err, ErrExit):
		return true, c.println(reply)
	case errors.Is(err, ErrUnknownCommand):
		return false, c.println(view.Unknown)
	case err != nil:
		logger(ctx).Error("command failed", slog.String(logx.FieldCommand, command), logx.Error(err))
		return false, c.println(domain.UserMessage(err))
	}

	return false, c.println(reply)
}

func (c *Console) println(s string) error {
	if _, err := fmt.Fprintln(c.out, s); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}

	return nil
}

// readLines читает строки в отдельной горутине, чтобы Run мог ждать ввод и
// отмену ctx одновременно. Канал закрывается в конце ввода.
func (c *Console) readLines(done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text()}:
			case <-done:
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-done:
			}
		}
	}()

	return lines
}
