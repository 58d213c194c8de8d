package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"addressbook/internal/domain/value"
)

const hoursPerDay = 24

// Record — контакт адресной книги.
type Record struct {
	Name     string
	Phones   []value.Phone
	Birthday *value.Birthday
}

// NewRecord создаёт контакт без телефонов и дня рождения.
func NewRecord(name string) *Record {
	return &Record{Name: name}
}

// AddPhone добавляет телефон в конец списка. Дубликаты разрешены.
func (r *Record) AddPhone(raw string) error {
	phone, err := value.ParsePhone(raw)
	if err != nil {
		return err
	}

	r.Phones = append(r.Phones, phone)
	return nil
}

// FindPhone возвращает первый телефон, совпадающий с raw.
func (r *Record) FindPhone(raw string) (value.Phone, bool) {
	return lo.Find(r.Phones, func(p value.Phone) bool {
		return p.String() == raw
	})
}

// RemovePhone удаляет первый телефон, совпадающий с raw.
func (r *Record) RemovePhone(raw string) bool {
	i := r.phoneIndex(raw)
	if i < 0 {
		return false
	}

	r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
	return true
}

// EditPhone заменяет первый телефон old на newRaw. Новое значение проходит
// ту же проверку, что и в AddPhone; при ошибке запись не меняется.
func (r *Record) EditPhone(old, newRaw string) (bool, error) {
	i := r.phoneIndex(old)
	if i < 0 {
		return false, nil
	}

	phone, err := value.ParsePhone(newRaw)
	if err != nil {
		return false, err
	}

	r.Phones[i] = phone
	return true, nil
}

func (r *Record) phoneIndex(raw string) int {
	_, i, _ := lo.FindIndexOf(r.Phones, func(p value.Phone) bool {
		return p.String() == raw
	})
	return i
}

// SetBirthday устанавливает или заменяет день рождения. updated сообщает,
// был ли день рождения задан раньше.
func (r *Record) SetBirthday(raw string) (updated bool, err error) {
	birthday, err := value.ParseBirthday(raw)
	if err != nil {
		return false, err
	}

	updated = r.Birthday != nil
	r.Birthday = &birthday
	return updated, nil
}

// DaysUntilBirthday возвращает число дней от today до ближайшего дня
// рождения (0 — сегодня). ok == false, если день рождения не задан.
func (r *Record) DaysUntilBirthday(today time.Time) (days int, ok bool) {
	if r.Birthday == nil {
		return 0, false
	}

	start := truncateToDay(today)

	next := r.Birthday.In(start.Year())
	if next.Before(start) {
		next = r.Birthday.In(start.Year() + 1)
	}

	return int(next.Sub(start).Hours() / hoursPerDay), true
}

// truncateToDay переносит календарную дату t в UTC, чтобы разница между
// датами всегда была кратна суткам.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (r *Record) String() string {
	phones := strings.Join(lo.Map(r.Phones, func(p value.Phone, _ int) string {
		return p.String()
	}), "; ")

	birthday := ""
	if r.Birthday != nil {
		birthday = fmt.Sprintf(", birthday: %s", r.Birthday)
	}

	return fmt.Sprintf("Contact name: %s, phones: %s%s", r.Name, phones, birthday)
}
