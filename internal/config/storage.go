package config

type Storage struct {
	Path     string `env:"BOOK_PATH" envDefault:"addressbook.json" validate:"required"`
	Compress bool   `env:"BOOK_COMPRESS" envDefault:"false"`
}
