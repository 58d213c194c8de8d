package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File appends logs to the named file; empty writes to Output.
	File string
	// Output defaults to os.Stderr so that stdout stays free for replies.
	Output  io.Writer
	NoColor bool
}

func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New builds a tint-backed logger. Bad options never fail: the logger falls
// back to the defaults and reports what it could not apply.
func New(options Options) *slog.Logger {
	level, ok := ParseLevel(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger := New(options)
		logger.Warn("could not parse logger level", slog.String("level", bad))
		return logger
	}

	output := options.Output
	if output == nil {
		output = os.Stderr
	}

	noColor := options.NoColor

	switch options.File {
	case "", "-":
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		f, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			options.File = ""
			logger := New(options)
			logger.Warn("could not open logger file", Error(err))
			return logger
		}
		output = f
		noColor = true
	}

	return slog.New(tint.NewHandler(output, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	}))
}
