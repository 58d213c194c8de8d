package value

import (
	"fmt"
	"time"

	"addressbook/internal/domain"
	"addressbook/pkg/errcodes"
)

const (
	// DateLayout is DD.MM.YYYY with zero-padded day and month.
	DateLayout = "02.01.2006"

	InvalidBirthdayMessage = "Invalid date format. Use DD.MM.YYYY"

	minYear = 1
	maxYear = 9999
)

// Birthday is a calendar date without time of day or location.
type Birthday struct {
	year  int
	month time.Month
	day   int
}

func ParseBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil || t.Year() < minYear {
		return Birthday{}, invalidBirthday()
	}

	return Birthday{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// NewBirthday builds a Birthday from its parts and rejects dates that do not
// exist in the calendar (31 April, 29 February of a common year).
func NewBirthday(year int, month time.Month, day int) (Birthday, error) {
	if year < minYear || year > maxYear {
		return Birthday{}, invalidBirthday()
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Birthday{}, invalidBirthday()
	}

	return Birthday{year: year, month: month, day: day}, nil
}

func invalidBirthday() error {
	return domain.NewError(errcodes.InvalidBirthday, InvalidBirthdayMessage)
}

func (b Birthday) Date() (year int, month time.Month, day int) {
	return b.year, b.month, b.day
}

func (b Birthday) Time() time.Time {
	return time.Date(b.year, b.month, b.day, 0, 0, 0, 0, time.UTC)
}

// In returns the anniversary in the given year at UTC midnight. 29 February
// falls on 28 February in common years.
func (b Birthday) In(year int) time.Time {
	day := b.day
	if b.month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}

	return time.Date(year, b.month, day, 0, 0, 0, 0, time.UTC)
}

func (b Birthday) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", b.day, int(b.month), b.year)
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
