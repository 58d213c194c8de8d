package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/benbjohnson/clock"

	"addressbook/internal/config"
	"addressbook/internal/infrastructure/persistence"
	"addressbook/internal/transport/console"
	"addressbook/internal/transport/console/handler"
	"addressbook/pkg/contextx"
	"addressbook/pkg/logx"
)

type Option func(*options)

type options struct {
	clock clock.Clock
}

// WithClock подменяет часы, по которым считаются ближайшие дни рождения.
func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		o.clock = clk
	}
}

// Run загружает книгу, ведёт сессию с пользователем и сохраняет книгу при
// выходе, в том числе по сигналу. Ошибка сохранения возвращается.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger, in io.Reader, out io.Writer, opts ...Option) error {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}

	sessionID := contextx.NewSessionID()
	ctx = contextx.WithSessionID(ctx, sessionID)
	ctx = contextx.WithLogger(ctx, log.With(logx.Stringer(logx.FieldSessionID, sessionID)))

	// 1. Storage
	repo := persistence.NewFileRepository(cfg.Storage.Path, persistence.WithCompression(cfg.Storage.Compress))

	book, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("repo.Load: %w", err)
	}

	// 2. Commands
	router := console.NewRouter()
	handler.New(book, o.clock).
		WithBirthdayWindow(cfg.Birthday.WindowDays).
		RegisterRoutes(router, logx.NewSensitiveDataMasker())
	log.Debug("commands registered", slog.Any("commands", router.Commands()))

	// 3. Session
	runErr := console.New(router, in, out, console.WithPrompt(cfg.Console.Prompt)).Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("console stopped", logx.Error(runErr))
	}

	log.Info("application stopping...", slog.String(logx.FieldBookPath, repo.Path()))

	// ctx уже может быть отменён сигналом, а сохранить книгу нужно всё равно.
	if err := repo.Save(context.WithoutCancel(ctx), book); err != nil {
		return errors.Join(fmt.Errorf("repo.Save: %w", err), ignoreCanceled(runErr))
	}

	return ignoreCanceled(runErr)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
