package response

import "leather-sandals-store/internal/domain/checkout"

type CheckoutResponse struct {
	CurrentStep         int               `json:"currentStep"`
	ShippingInfo        *ShippingResponse `json:"shippingInfo"`
	PaymentMethod       string            `json:"paymentMethod"`
	AcceptedTerms       bool              `json:"acceptedTerms"`
	AcceptedKvkk        bool              `json:"acceptedKvkk"`
	IsOrderCompleted    bool              `json:"isOrderCompleted"`
	CanProceedToPayment bool              `json:"canProceedToPayment"`
	CanProceedToReview  bool              `json:"canProceedToReview"`
	CanPlaceOrder       bool              `json:"canPlaceOrder"`
}

func FromSession(s *checkout.Session) CheckoutResponse {
	res := CheckoutResponse{
		CurrentStep:         int(s.CurrentStep()),
		PaymentMethod:       s.PaymentMethod().String(),
		AcceptedTerms:       s.AcceptedTerms(),
		AcceptedKvkk:        s.AcceptedKvkk(),
		IsOrderCompleted:    s.IsOrderCompleted(),
		CanProceedToPayment: s.CanProceedToPayment(),
		CanProceedToReview:  s.CanProceedToReview(),
		CanPlaceOrder:       s.CanPlaceOrder(),
	}
	if a := s.ShippingInfo(); a != nil {
		res.ShippingInfo = &ShippingResponse{
			Title:      a.Title,
			FirstName:  a.FirstName,
			LastName:   a.LastName,
			Phone:      a.Phone,
			Address:    a.Address,
			City:       a.City,
			District:   a.District,
			PostalCode: a.PostalCode,
		}
	}
	return res
}
