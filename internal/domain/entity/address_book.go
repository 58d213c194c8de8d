package entity

import (
	"slices"
	"time"

	"addressbook/internal/domain/value"
)

// DefaultBirthdayWindow — сколько дней вперёд смотрит UpcomingBirthdays по умолчанию.
const DefaultBirthdayWindow = 7

// UpcomingBirthday — контакт, которого нужно поздравить в ближайшие дни.
type UpcomingBirthday struct {
	Name               string
	Birthday           value.Birthday
	CongratulationDate time.Time
}

// AddressBook хранит контакты по имени и помнит порядок добавления.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord добавляет контакт или заменяет контакт с тем же именем,
// сохраняя его место в порядке обхода.
func (b *AddressBook) AddRecord(record *Record) (replaced bool) {
	if _, ok := b.records[record.Name]; ok {
		b.records[record.Name] = record
		return true
	}

	b.records[record.Name] = record
	b.order = append(b.order, record.Name)
	return false
}

func (b *AddressBook) Find(name string) (*Record, bool) {
	record, ok := b.records[name]
	return record, ok
}

func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}

	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return true
}

func (b *AddressBook) Len() int {
	return len(b.order)
}

// Records возвращает контакты в порядке добавления.
func (b *AddressBook) Records() []*Record {
	result := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		result = append(result, b.records[name])
	}
	return result
}

// UpcomingBirthdays возвращает контакты, чей день рождения наступает в
// ближайшие windowDays дней включительно, в порядке добавления.
func (b *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) []UpcomingBirthday {
	start := truncateToDay(today)

	var result []UpcomingBirthday

	for _, record := range b.Records() {
		days, ok := record.DaysUntilBirthday(start)
		if !ok || days < 0 || days > windowDays {
			continue
		}

		result = append(result, UpcomingBirthday{
			Name:               record.Name,
			Birthday:           *record.Birthday,
			CongratulationDate: start.AddDate(0, 0, days),
		})
	}

	return result
}
