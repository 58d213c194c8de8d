package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/value"
	"addressbook/internal/transport/console"
	"addressbook/internal/transport/console/view"
)

func (h *Handler) OnHello(context.Context, []string) (string, error) {
	return view.HelloAnswer, nil
}

func (h *Handler) OnExit(context.Context, []string) (string, error) {
	return view.GoodBye, console.ErrExit
}

func (h *Handler) OnUnknown(context.Context, []string) (string, error) {
	return view.Unknown, nil
}

// OnAdd создаёт контакт с телефоном или добавляет телефон существующему.
// Новый контакт появляется в книге только с корректным телефоном.
func (h *Handler) OnAdd(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return view.AddMissingArguments, nil
	}

	name, phone := args[0], args[1]

	record, ok := h.book.Find(name)
	if ok {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}

		return view.ContactUpdated, nil
	}

	record = entity.NewRecord(name)
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}

	h.book.AddRecord(record)
	logger(ctx).Info("contact created", contactAttr(name))

	return view.ContactAdded, nil
}

func (h *Handler) OnChange(_ context.Context, args []string) (string, error) {
	if len(args) < 3 {
		return view.ChangeMissingArguments, nil
	}

	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := h.book.Find(name)
	if !ok {
		return view.ContactNotFound, nil
	}

	changed, err := record.EditPhone(oldPhone, newPhone)
	if err != nil {
		return "", err
	}

	if !changed {
		return fmt.Sprintf(view.PhoneNotFoundTemplate, oldPhone), nil
	}

	return fmt.Sprintf(view.PhoneChangedTemplate, oldPhone, newPhone), nil
}

func (h *Handler) OnPhone(_ context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return view.NameMissing, nil
	}

	name := args[0]

	record, ok := h.book.Find(name)
	if !ok {
		return view.ContactNotFound, nil
	}

	phones := lo.Map(record.Phones, func(p value.Phone, _ int) string {
		return p.String()
	})

	return fmt.Sprintf(view.PhonesTemplate, name, strings.Join(phones, view.PhonesSeparator)), nil
}

func (h *Handler) OnAll(context.Context, []string) (string, error) {
	records := h.book.Records()
	if len(records) == 0 {
		return view.NoContacts, nil
	}

	lines := lo.Map(records, func(r *entity.Record, _ int) string {
		return r.String()
	})

	return strings.Join(lines, "\n"), nil
}

func (h *Handler) OnRemovePhone(_ context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return view.RemovePhoneMissingArguments, nil
	}

	name, phone := args[0], args[1]

	record, ok := h.book.Find(name)
	if !ok {
		return view.ContactNotFound, nil
	}

	if !record.RemovePhone(phone) {
		return fmt.Sprintf(view.PhoneNotFoundTemplate, phone), nil
	}

	return fmt.Sprintf(view.PhoneRemovedTemplate, phone), nil
}

func (h *Handler) OnDelete(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return view.NameMissing, nil
	}

	name := args[0]

	if !h.book.Delete(name) {
		return view.ContactNotFound, nil
	}

	logger(ctx).Info("contact deleted", contactAttr(name))

	return fmt.Sprintf(view.RecordDeletedTemplate, name), nil
}
