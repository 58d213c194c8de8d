package value_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"addressbook/internal/domain"
	"addressbook/internal/domain/value"
	"addressbook/pkg/errcodes"
	"addressbook/pkg/tests"
)

func TestParseBirthday(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "Regular date", input: "15.03.1990", valid: true},
		{name: "Leap day", input: "29.02.2000", valid: true},
		{name: "Year end", input: "31.12.1999", valid: true},
		{name: "Leap day in common year", input: "29.02.2001", valid: false},
		{name: "31 April", input: "31.04.1990", valid: false},
		{name: "Month 13", input: "01.13.1990", valid: false},
		{name: "Day zero", input: "00.01.1990", valid: false},
		{name: "ISO layout", input: "1990-03-15", valid: false},
		{name: "Slashes", input: "15/03/1990", valid: false},
		{name: "Single digit day", input: "5.03.1990", valid: false},
		{name: "Two digit year", input: "15.03.90", valid: false},
		{name: "Trailing text", input: "15.03.1990x", valid: false},
		{name: "Year zero", input: "15.03.0000", valid: false},
		{name: "Empty", input: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			birthday, err := value.ParseBirthday(tc.input)
			if tc.valid {
				rq.NoError(err)
				rq.Equal(tc.input, birthday.String())
				return
			}

			rq.EqualError(err, value.InvalidBirthdayMessage)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(errcodes.InvalidBirthday, code)
		})
	}
}

func TestParseBirthdayRoundTrip(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 500 {
		raw := value.FormatDate(random.Date())

		birthday, err := value.ParseBirthday(raw)
		rq.NoError(err)
		rq.Equal(raw, birthday.String())
	}
}

func TestNewBirthday(t *testing.T) {
	rq := require.New(t)

	birthday, err := value.NewBirthday(1990, time.March, 15)
	rq.NoError(err)

	year, month, day := birthday.Date()
	rq.Equal(1990, year)
	rq.Equal(time.March, month)
	rq.Equal(15, day)
	rq.Equal(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC), birthday.Time())

	parsed, err := value.ParseBirthday("15.03.1990")
	rq.NoError(err)
	rq.Equal(parsed, birthday)

	_, err = value.NewBirthday(1990, time.April, 31)
	rq.Error(err)

	_, err = value.NewBirthday(0, time.January, 1)
	rq.Error(err)

	_, err = value.NewBirthday(1990, time.Month(13), 1)
	rq.Error(err)
}

func TestBirthdayIn(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		birthday string
		year     int
		expected time.Time
	}{
		{
			name:     "Regular date",
			birthday: "15.03.1990",
			year:     2026,
			expected: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Leap day in leap year",
			birthday: "29.02.2000",
			year:     2028,
			expected: time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Leap day in common year",
			birthday: "29.02.2000",
			year:     2026,
			expected: time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Leap day in century year",
			birthday: "29.02.2000",
			year:     2100,
			expected: time.Date(2100, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			birthday, err := value.ParseBirthday(tc.birthday)
			rq.NoError(err)
			rq.Equal(tc.expected, birthday.In(tc.year))
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	rq := require.New(t)

	rq.True(value.IsLeapYear(2000))
	rq.True(value.IsLeapYear(2024))
	rq.False(value.IsLeapYear(1900))
	rq.False(value.IsLeapYear(2026))
}
