package request

import "leather-sandals-store/internal/domain/checkout"

type ShippingRequest struct {
	Title      string `json:"title"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode,omitempty"`
	IsDefault  bool   `json:"isDefault,omitempty"`
}

// ToDomain copies fields only; validation happens in checkout.NewAddress.
func (r ShippingRequest) ToDomain() checkout.Address {
	return checkout.Address(r)
}

type PaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type ConsentsRequest struct {
	AcceptedTerms bool `json:"acceptedTerms"`
	AcceptedKvkk  bool `json:"acceptedKvkk"`
}

type GoToStepRequest struct {
	Step int `json:"step" binding:"required"`
}
