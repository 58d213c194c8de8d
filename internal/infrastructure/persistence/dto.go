package persistence

import (
	"fmt"
	"time"

	"addressbook/internal/domain"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/value"
	"addressbook/pkg/errcodes"
	"addressbook/pkg/lox"
)

// snapshotVersion меняется при любом несовместимом изменении схемы.
const snapshotVersion = 1

// snapshotSchema — содержимое файла адресной книги.
type snapshotSchema struct {
	Version int            `json:"version"`
	Records []recordSchema `json:"records"`
}

type recordSchema struct {
	Name     string          `json:"name"`
	Phones   []string        `json:"phones"`
	Birthday *birthdaySchema `json:"birthday"`
}

// birthdaySchema хранит дату по частям, а не строкой.
type birthdaySchema struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func fromAddressBook(book *entity.AddressBook) snapshotSchema {
	return snapshotSchema{
		Version: snapshotVersion,
		Records: lox.Map(book.Records(), fromRecord),
	}
}

func fromRecord(r *entity.Record) recordSchema {
	schema := recordSchema{
		Name:   r.Name,
		Phones: lox.Map(r.Phones, value.Phone.String),
	}

	if r.Birthday != nil {
		year, month, day := r.Birthday.Date()
		schema.Birthday = &birthdaySchema{Year: year, Month: int(month), Day: day}
	}

	return schema
}

func (s *snapshotSchema) toDomain() (*entity.AddressBook, error) {
	if s.Version != snapshotVersion {
		return nil, domain.NewError(
			errcodes.UnsupportedSnapshot,
			fmt.Sprintf("unsupported address book version %d, expected %d", s.Version, snapshotVersion),
		)
	}

	book := entity.NewAddressBook()

	for i, rs := range s.Records {
		record, err := rs.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.CorruptedSnapshot, fmt.Sprintf("invalid record #%d", i))
		}

		if replaced := book.AddRecord(record); replaced {
			return nil, domain.NewError(errcodes.CorruptedSnapshot, fmt.Sprintf("duplicate contact %q", record.Name))
		}
	}

	return book, nil
}

func (s *recordSchema) toDomain() (*entity.Record, error) {
	if s.Name == "" {
		return nil, domain.NewError(errcodes.InvalidContactName, "contact name is empty")
	}

	phones, err := lox.MapErr(s.Phones, value.ParsePhone)
	if err != nil {
		return nil, fmt.Errorf("phones: %w", err)
	}

	record := entity.NewRecord(s.Name)
	if len(phones) > 0 {
		record.Phones = phones
	}

	if s.Birthday != nil {
		birthday, err := value.NewBirthday(s.Birthday.Year, time.Month(s.Birthday.Month), s.Birthday.Day)
		if err != nil {
			return nil, fmt.Errorf("birthday: %w", err)
		}
		record.Birthday = &birthday
	}

	return record, nil
}
