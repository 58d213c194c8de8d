package handler

import (
	"github.com/benbjohnson/clock"

	"addressbook/internal/domain/entity"
)

type Handler struct {
	book  *entity.AddressBook
	clock clock.Clock

	birthdayWindow int
}

func New(book *entity.AddressBook, clk clock.Clock) *Handler {
	return &Handler{
		book:           book,
		clock:          clk,
		birthdayWindow: entity.DefaultBirthdayWindow,
	}
}

// WithBirthdayWindow задаёт, на сколько дней вперёд смотрит команда birthdays.
func (h *Handler) WithBirthdayWindow(days int) *Handler {
	h.birthdayWindow = days
	return h
}
