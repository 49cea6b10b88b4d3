package checkout

import "errors"

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "CARD"
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"

	DefaultPaymentMethod = PaymentCashOnDelivery
)

func NewPaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentCard || m == PaymentCashOnDelivery
}

func (m PaymentMethod) String() string {
	return string(m)
}
