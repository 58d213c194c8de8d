package config

type Console struct {
	Prompt string `env:"CONSOLE_PROMPT" envDefault:"Enter a command: "`
}
