package handler

import (
	"log/slog"

	"addressbook/pkg/contextx"
	"addressbook/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func contactAttr(name string) slog.Attr {
	return slog.String(logx.FieldContact, name)
}
