package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Storage  Storage
	Console  Console
	Birthday Birthday
	Log      Log
}

type Birthday struct {
	// WindowDays — сколько дней вперёд показывает команда birthdays.
	WindowDays int `env:"BIRTHDAYS_WINDOW_DAYS" envDefault:"7" validate:"min=0,max=366"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, validate(config)
}

// LoadFrom разбирает конфигурацию только из переданных переменных,
// не трогая окружение процесса и .env.
func LoadFrom(environment map[string]string) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("env.ParseWithOptions: %w", err)
	}

	return config, validate(config)
}

func validate(config Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	return nil
}
