//go:build unit || e2e

package builder

import (
	"leather-sandals-store/internal/domain/checkout"
)

type AddressBuilder struct {
	Address checkout.Address
}

func NewAddressBuilder() *AddressBuilder {
	return &AddressBuilder{
		Address: checkout.Address{
			Title:      "Ev",
			FirstName:  "Ayşe",
			LastName:   "Yılmaz",
			Phone:      "05321234567",
			Address:    "Bağdat Caddesi No: 12 Daire: 4",
			City:       "İstanbul",
			District:   "Kadıköy",
			PostalCode: "34710",
		},
	}
}

func (b *AddressBuilder) With(mutate func(*checkout.Address)) *AddressBuilder {
	mutate(&b.Address)
	return b
}

func (b *AddressBuilder) BuildDomain() (*checkout.Address, error) {
	return checkout.NewAddress(b.Address)
}

// MustBuild panics on an invalid address; for fixtures only.
func (b *AddressBuilder) MustBuild() *checkout.Address {
	a, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return a
}

// ReadySession returns a session that satisfies CanPlaceOrder.
func ReadySession() *checkout.Session {
	s := checkout.NewSession()
	s.SetShippingInfo(NewAddressBuilder().MustBuild())
	s.SetPaymentMethod(checkout.PaymentCard)
	s.SetConsents(true, true)
	s.GoToStep(checkout.StepReview)
	return s
}
