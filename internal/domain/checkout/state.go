package checkout

// PersistedState survives across visits: the address and payment choice.
type PersistedState struct {
	ShippingInfo  *Address
	PaymentMethod PaymentMethod
}

// TransientState lives only as long as the browsing session.
type TransientState struct {
	CurrentStep      Step
	AcceptedTerms    bool
	AcceptedKvkk     bool
	IsOrderCompleted bool
}

func (s *Session) Persisted() PersistedState {
	return PersistedState{
		ShippingInfo:  s.ShippingInfo(),
		PaymentMethod: s.paymentMethod,
	}
}

func (s *Session) Transient() TransientState {
	return TransientState{
		CurrentStep:      s.currentStep,
		AcceptedTerms:    s.acceptedTerms,
		AcceptedKvkk:     s.acceptedKvkk,
		IsOrderCompleted: s.isOrderCompleted,
	}
}

// RestoreSession merges both halves. Invalid values fall back to defaults;
// a stored address that no longer validates is dropped.
func RestoreSession(p PersistedState, t TransientState) *Session {
	s := NewSession()
	if p.ShippingInfo != nil {
		if a, err := NewAddress(*p.ShippingInfo); err == nil {
			s.shippingInfo = a
		}
	}
	s.SetPaymentMethod(p.PaymentMethod)
	s.currentStep = t.CurrentStep.clamp()
	s.acceptedTerms = t.AcceptedTerms
	s.acceptedKvkk = t.AcceptedKvkk
	s.isOrderCompleted = t.IsOrderCompleted
	return s
}
