package entity_test

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/value"
	"addressbook/pkg/tests"
)

func phones(r *entity.Record) []string {
	return lo.Map(r.Phones, func(p value.Phone, _ int) string { return p.String() })
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRecordPhones(t *testing.T) {
	rq := require.New(t)

	record := entity.NewRecord("Alice")
	rq.Equal("Alice", record.Name)
	rq.Empty(record.Phones)
	rq.Nil(record.Birthday)

	rq.NoError(record.AddPhone("0123456789"))
	rq.NoError(record.AddPhone("9876543210"))
	rq.NoError(record.AddPhone("0123456789"))
	rq.Equal([]string{"0123456789", "9876543210", "0123456789"}, phones(record))

	rq.EqualError(record.AddPhone("12345"), value.InvalidPhoneMessage)
	rq.Len(record.Phones, 3)

	phone, ok := record.FindPhone("9876543210")
	rq.True(ok)
	rq.Equal("9876543210", phone.String())

	_, ok = record.FindPhone("1111111111")
	rq.False(ok)

	rq.True(record.RemovePhone("0123456789"))
	rq.Equal([]string{"9876543210", "0123456789"}, phones(record))
	rq.False(record.RemovePhone("1111111111"))
	rq.Equal([]string{"9876543210", "0123456789"}, phones(record))
}

func TestRecordEditPhone(t *testing.T) {
	rq := require.New(t)

	record := entity.NewRecord("Alice")
	rq.NoError(record.AddPhone("0123456789"))
	rq.NoError(record.AddPhone("0123456789"))

	changed, err := record.EditPhone("0123456789", "5555555555")
	rq.NoError(err)
	rq.True(changed)
	rq.Equal([]string{"5555555555", "0123456789"}, phones(record))

	changed, err = record.EditPhone("1111111111", "2222222222")
	rq.NoError(err)
	rq.False(changed)

	changed, err = record.EditPhone("0123456789", "bad")
	rq.EqualError(err, value.InvalidPhoneMessage)
	rq.False(changed)
	rq.Equal([]string{"5555555555", "0123456789"}, phones(record))
}

func TestRecordSetBirthday(t *testing.T) {
	rq := require.New(t)

	record := entity.NewRecord("Alice")

	updated, err := record.SetBirthday("15.03.1990")
	rq.NoError(err)
	rq.False(updated)
	rq.Equal("15.03.1990", record.Birthday.String())

	updated, err = record.SetBirthday("16.03.1990")
	rq.NoError(err)
	rq.True(updated)
	rq.Equal("16.03.1990", record.Birthday.String())

	_, err = record.SetBirthday("31.04.1990")
	rq.EqualError(err, value.InvalidBirthdayMessage)
	rq.Equal("16.03.1990", record.Birthday.String())
}

func TestRecordDaysUntilBirthday(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		birthday string
		today    time.Time
		days     int
	}{
		{name: "Today", birthday: "19.10.1990", today: date(2026, time.October, 19), days: 0},
		{name: "Tomorrow", birthday: "20.10.1990", today: date(2026, time.October, 19), days: 1},
		{name: "Yesterday wraps to next year", birthday: "18.10.1990", today: date(2026, time.October, 19), days: 364},
		{name: "Across year end", birthday: "02.01.1990", today: date(2026, time.December, 30), days: 3},
		{name: "Wrap into leap year", birthday: "01.03.1990", today: date(2027, time.March, 2), days: 365},
		{name: "Leap day in common year", birthday: "29.02.2000", today: date(2026, time.February, 20), days: 8},
		{name: "Leap day in leap year", birthday: "29.02.2000", today: date(2028, time.February, 20), days: 9},
		{name: "Leap day after 28 February", birthday: "29.02.2000", today: date(2026, time.March, 1), days: 364},
		{
			name:     "Time of day is ignored",
			birthday: "20.10.1990",
			today:    time.Date(2026, time.October, 19, 23, 59, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			days:     1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			record := entity.NewRecord("Alice")
			_, err := record.SetBirthday(tc.birthday)
			rq.NoError(err)

			days, ok := record.DaysUntilBirthday(tc.today)
			rq.True(ok)
			rq.Equal(tc.days, days)
		})
	}
}

func TestRecordDaysUntilBirthdayUnset(t *testing.T) {
	rq := require.New(t)

	_, ok := entity.NewRecord("Alice").DaysUntilBirthday(date(2026, time.October, 19))
	rq.False(ok)
}

func TestRecordDaysUntilBirthdayRange(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 1000 {
		record := entity.NewRecord("Random")
		_, err := record.SetBirthday(value.FormatDate(random.Date()))
		rq.NoError(err)

		days, ok := record.DaysUntilBirthday(random.Date())
		rq.True(ok)
		rq.GreaterOrEqual(days, 0)
		rq.LessOrEqual(days, 366)
	}
}

func TestRecordString(t *testing.T) {
	rq := require.New(t)

	record := entity.NewRecord("Alice")
	rq.Equal("Contact name: Alice, phones: ", record.String())

	rq.NoError(record.AddPhone("0123456789"))
	rq.NoError(record.AddPhone("9876543210"))
	rq.Equal("Contact name: Alice, phones: 0123456789; 9876543210", record.String())

	_, err := record.SetBirthday("15.03.1990")
	rq.NoError(err)
	rq.Equal("Contact name: Alice, phones: 0123456789; 9876543210, birthday: 15.03.1990", record.String())
}
