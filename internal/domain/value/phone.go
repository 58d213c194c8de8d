package value

import (
	"addressbook/internal/domain"
	"addressbook/pkg/errcodes"
)

const (
	PhoneDigits = 10

	phoneRules = "required,len=10,number"

	InvalidPhoneMessage = "Phone number must contain exactly 10 digits."
)

// Phone is a validated 10-digit phone number. The zero value is not a valid
// phone; use ParsePhone.
type Phone struct {
	value string
}

func ParsePhone(raw string) (Phone, error) {
	if err := validate.Var(raw, phoneRules); err != nil {
		return Phone{}, domain.NewError(errcodes.InvalidPhoneNumber, InvalidPhoneMessage)
	}

	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}
