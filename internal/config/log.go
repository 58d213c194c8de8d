package config

import "addressbook/pkg/logx"

type Log struct {
	Level   string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	File    string `env:"LOG_FILE"`
	NoColor bool   `env:"LOG_NO_COLOR" envDefault:"false"`
}

func (l Log) Options() logx.Options {
	return logx.Options{
		Level:   l.Level,
		File:    l.File,
		NoColor: l.NoColor,
	}
}
