package checkout

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidAddress = errors.New("invalid shipping address")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Address is the shipping and contact record consumed by the shipping step.
type Address struct {
	Title      string `validate:"required,max=50"`
	FirstName  string `validate:"required,max=50"`
	LastName   string `validate:"required,max=50"`
	Phone      string `validate:"required,min=10,max=20"`
	Address    string `validate:"required,min=10,max=500"`
	City       string `validate:"required,max=50"`
	District   string `validate:"required,max=50"`
	PostalCode string `validate:"omitempty,max=10"`
	IsDefault  bool
}

// NewAddress trims every field and validates the result. The returned
// error wraps ErrInvalidAddress and lists the failing fields.
func NewAddress(a Address) (*Address, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Address = strings.TrimSpace(a.Address)
	a.City = strings.TrimSpace(a.City)
	a.District = strings.TrimSpace(a.District)
	a.PostalCode = strings.TrimSpace(a.PostalCode)

	if err := validate.Struct(a); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, &AddressError{Fields: fieldNames(verrs)}
		}
		return nil, errors.Join(ErrInvalidAddress, err)
	}
	return &a, nil
}

// AddressError names the fields that failed validation.
type AddressError struct {
	Fields []string
}

func (e *AddressError) Error() string {
	return ErrInvalidAddress.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *AddressError) Unwrap() error {
	return ErrInvalidAddress
}

func fieldNames(verrs validator.ValidationErrors) []string {
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, lowerFirst(fe.Field()))
	}
	return names
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
