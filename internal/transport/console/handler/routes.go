package handler

import (
	"addressbook/internal/transport/console"
	"addressbook/internal/transport/console/middleware"
	"addressbook/pkg/logx"
)

func (h *Handler) RegisterRoutes(router *console.Router, sensitiveDataMasker logx.SensitiveDataMaskerInterface) {
	router.Use(
		middleware.Logging(sensitiveDataMasker),
		middleware.InputError,
		middleware.Recovery,
	)

	router.Handle("hello", h.OnHello)
	router.Handle("close", h.OnExit)
	router.Handle("exit", h.OnExit)

	// Контакты и телефоны
	router.Handle("add", h.OnAdd)
	router.Handle("change", h.OnChange)
	router.Handle("phone", h.OnPhone)
	router.Handle("all", h.OnAll)
	router.Handle("remove-phone", h.OnRemovePhone)
	router.Handle("delete", h.OnDelete)

	// Дни рождения
	router.Handle("add-birthday", h.OnAddBirthday)
	router.Handle("show-birthday", h.OnShowBirthday)
	router.Handle("birthdays", h.OnBirthdays)

	router.NotFound(h.OnUnknown)
}
