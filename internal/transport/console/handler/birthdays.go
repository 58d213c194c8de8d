package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/value"
	"addressbook/internal/transport/console/view"
)

func (h *Handler) OnAddBirthday(_ context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return view.AddBirthdayMissingArguments, nil
	}

	name, birthday := args[0], args[1]

	record, ok := h.book.Find(name)
	if !ok {
		return view.ContactNotFound, nil
	}

	updated, err := record.SetBirthday(birthday)
	if err != nil {
		return "", err
	}

	if updated {
		return fmt.Sprintf(view.BirthdayUpdatedTemplate, name), nil
	}

	return fmt.Sprintf(view.BirthdayAddedTemplate, name), nil
}

func (h *Handler) OnShowBirthday(_ context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return view.NameMissing, nil
	}

	name := args[0]

	record, ok := h.book.Find(name)
	if !ok {
		return view.ContactNotFound, nil
	}

	if record.Birthday == nil {
		return fmt.Sprintf(view.NoBirthdayTemplate, name), nil
	}

	return fmt.Sprintf(view.BirthdayTemplate, name, record.Birthday), nil
}

// OnBirthdays перечисляет, кого и в какой день поздравлять в ближайшие дни.
func (h *Handler) OnBirthdays(context.Context, []string) (string, error) {
	upcoming := h.book.UpcomingBirthdays(h.clock.Now(), h.birthdayWindow)
	if len(upcoming) == 0 {
		return view.NoUpcomingBirthdays, nil
	}

	lines := lo.Map(upcoming, func(u entity.UpcomingBirthday, _ int) string {
		return fmt.Sprintf(view.UpcomingBirthdayTemplate, u.Name, value.FormatDate(u.CongratulationDate))
	})

	return strings.Join(lines, "\n"), nil
}
