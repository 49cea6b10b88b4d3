package checkout

type Step int

const (
	StepShipping Step = 1
	StepPayment  Step = 2
	StepReview   Step = 3
)

func (s Step) clamp() Step {
	switch {
	case s < StepShipping:
		return StepShipping
	case s > StepReview:
		return StepReview
	default:
		return s
	}
}

// Session is the checkout wizard state for one visitor. Every operation is
// total: out-of-range steps are clamped and no method returns an error.
// Navigation is not gated here; callers check the CanProceed predicates.
type Session struct {
	currentStep      Step
	shippingInfo     *Address
	paymentMethod    PaymentMethod
	acceptedTerms    bool
	acceptedKvkk     bool
	isOrderCompleted bool
}

func NewSession() *Session {
	return &Session{
		currentStep:   StepShipping,
		paymentMethod: DefaultPaymentMethod,
	}
}

func (s *Session) CanProceedToPayment() bool {
	return s.shippingInfo != nil
}

func (s *Session) CanProceedToReview() bool {
	return s.CanProceedToPayment() && s.paymentMethod.IsValid()
}

func (s *Session) CanPlaceOrder() bool {
	return s.CanProceedToReview() && s.acceptedTerms && s.acceptedKvkk
}

// CanEnter applies the predicate guarding entry into step.
func (s *Session) CanEnter(step Step) bool {
	switch step.clamp() {
	case StepPayment:
		return s.CanProceedToPayment()
	case StepReview:
		return s.CanProceedToReview()
	default:
		return true
	}
}

func (s *Session) NextStep() {
	s.currentStep = (s.currentStep + 1).clamp()
}

func (s *Session) PrevStep() {
	s.currentStep = (s.currentStep - 1).clamp()
}

func (s *Session) GoToStep(step Step) {
	s.currentStep = step.clamp()
}

// Reset returns everything to defaults except the completion flag, which
// must outlive the reset that follows order placement.
func (s *Session) Reset() {
	completed := s.isOrderCompleted
	*s = *NewSession()
	s.isOrderCompleted = completed
}

// StartNew is Reset plus clearing the completion flag.
func (s *Session) StartNew() {
	*s = *NewSession()
}

// SetShippingInfo only takes addresses built by NewAddress; nil clears.
func (s *Session) SetShippingInfo(a *Address) {
	if a == nil {
		s.shippingInfo = nil
		return
	}
	cp := *a
	s.shippingInfo = &cp
}

// SetPaymentMethod ignores unknown methods.
func (s *Session) SetPaymentMethod(m PaymentMethod) {
	if m.IsValid() {
		s.paymentMethod = m
	}
}

func (s *Session) SetConsents(terms, kvkk bool) {
	s.acceptedTerms = terms
	s.acceptedKvkk = kvkk
}

func (s *Session) MarkOrderCompleted() {
	s.isOrderCompleted = true
}

func (s *Session) CurrentStep() Step            { return s.currentStep }
func (s *Session) PaymentMethod() PaymentMethod { return s.paymentMethod }
func (s *Session) AcceptedTerms() bool          { return s.acceptedTerms }
func (s *Session) AcceptedKvkk() bool           { return s.acceptedKvkk }
func (s *Session) IsOrderCompleted() bool       { return s.isOrderCompleted }

func (s *Session) ShippingInfo() *Address {
	if s.shippingInfo == nil {
		return nil
	}
	cp := *s.shippingInfo
	return &cp
}
