//go:build unit

package checkout_test

import (
	"testing"

	"leather-sandals-store/internal/domain/checkout"
	"leather-sandals-store/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := checkout.NewSession()

	assert.Equal(t, checkout.StepShipping, s.CurrentStep())
	assert.Nil(t, s.ShippingInfo())
	assert.Equal(t, checkout.PaymentCashOnDelivery, s.PaymentMethod())
	assert.False(t, s.AcceptedTerms())
	assert.False(t, s.AcceptedKvkk())
	assert.False(t, s.IsOrderCompleted())
	assert.False(t, s.CanProceedToPayment())
	assert.False(t, s.CanProceedToReview())
	assert.False(t, s.CanPlaceOrder())
}

func TestSessionPredicates(t *testing.T) {
	cases := []struct {
		name       string
		address    bool
		terms      bool
		kvkk       bool
		toPayment  bool
		toReview   bool
		placeOrder bool
	}{
		{name: "nothing set"},
		{name: "address only", address: true, toPayment: true, toReview: true},
		{name: "address and kvkk", address: true, kvkk: true, toPayment: true, toReview: true},
		{name: "address and terms", address: true, terms: true, toPayment: true, toReview: true},
		{name: "consents without address", terms: true, kvkk: true},
		{name: "everything", address: true, terms: true, kvkk: true, toPayment: true, toReview: true, placeOrder: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := checkout.NewSession()
			if tc.address {
				s.SetShippingInfo(builder.NewAddressBuilder().MustBuild())
			}
			s.SetConsents(tc.terms, tc.kvkk)

			assert.Equal(t, tc.toPayment, s.CanProceedToPayment())
			assert.Equal(t, tc.toReview, s.CanProceedToReview())
			assert.Equal(t, tc.placeOrder, s.CanPlaceOrder())
			assert.Equal(t, tc.toPayment, s.CanEnter(checkout.StepPayment))
			assert.Equal(t, tc.toReview, s.CanEnter(checkout.StepReview))
			assert.True(t, s.CanEnter(checkout.StepShipping))
		})
	}
}

func TestSessionNavigation(t *testing.T) {
	t.Run("next step caps at review", func(t *testing.T) {
		s := checkout.NewSession()
		s.NextStep()
		assert.Equal(t, checkout.StepPayment, s.CurrentStep())
		s.NextStep()
		s.NextStep()
		s.NextStep()
		assert.Equal(t, checkout.StepReview, s.CurrentStep())
	})

	t.Run("next step is not gated", func(t *testing.T) {
		s := checkout.NewSession()
		require.False(t, s.CanProceedToPayment())
		s.NextStep()
		assert.Equal(t, checkout.StepPayment, s.CurrentStep())
	})

	t.Run("prev step floors at shipping", func(t *testing.T) {
		s := checkout.NewSession()
		s.PrevStep()
		assert.Equal(t, checkout.StepShipping, s.CurrentStep())

		s.GoToStep(checkout.StepReview)
		s.PrevStep()
		assert.Equal(t, checkout.StepPayment, s.CurrentStep())
	})

	t.Run("go to step clamps", func(t *testing.T) {
		s := checkout.NewSession()
		s.GoToStep(9)
		assert.Equal(t, checkout.StepReview, s.CurrentStep())
		s.GoToStep(-2)
		assert.Equal(t, checkout.StepShipping, s.CurrentStep())
	})
}

func TestSessionReset(t *testing.T) {
	for _, completed := range []bool{true, false} {
		s := builder.ReadySession()
		if completed {
			s.MarkOrderCompleted()
		}

		s.Reset()

		assert.Equal(t, completed, s.IsOrderCompleted())
		assert.Equal(t, checkout.StepShipping, s.CurrentStep())
		assert.Nil(t, s.ShippingInfo())
		assert.Equal(t, checkout.DefaultPaymentMethod, s.PaymentMethod())
		assert.False(t, s.AcceptedTerms())
		assert.False(t, s.AcceptedKvkk())
	}

	t.Run("start new clears completion", func(t *testing.T) {
		s := builder.ReadySession()
		s.MarkOrderCompleted()
		s.Reset()
		s.StartNew()
		assert.False(t, s.IsOrderCompleted())
	})

	t.Run("start new drops the saved address and payment", func(t *testing.T) {
		s := builder.ReadySession()
		s.SetPaymentMethod(checkout.PaymentCard)

		s.StartNew()

		assert.Equal(t, checkout.NewSession().Persisted(), s.Persisted())
		assert.Nil(t, s.ShippingInfo())
		assert.Equal(t, checkout.DefaultPaymentMethod, s.PaymentMethod())
		assert.Equal(t, checkout.StepShipping, s.CurrentStep())
	})
}

func TestSessionSetters(t *testing.T) {
	t.Run("unknown payment method is ignored", func(t *testing.T) {
		s := checkout.NewSession()
		s.SetPaymentMethod(checkout.PaymentCard)
		s.SetPaymentMethod("BITCOIN")
		assert.Equal(t, checkout.PaymentCard, s.PaymentMethod())
	})

	t.Run("shipping info is copied", func(t *testing.T) {
		a := builder.NewAddressBuilder().MustBuild()
		s := checkout.NewSession()
		s.SetShippingInfo(a)
		a.City = "Ankara"
		assert.Equal(t, "İstanbul", s.ShippingInfo().City)

		s.SetShippingInfo(nil)
		assert.False(t, s.CanProceedToPayment())
	})
}

func TestRestoreSession(t *testing.T) {
	s := builder.ReadySession()
	s.MarkOrderCompleted()

	restored := checkout.RestoreSession(s.Persisted(), s.Transient())
	assert.Equal(t, s.Persisted(), restored.Persisted())
	assert.Equal(t, s.Transient(), restored.Transient())

	t.Run("bad values fall back to defaults", func(t *testing.T) {
		broken := builder.NewAddressBuilder().With(func(a *checkout.Address) { a.Phone = "123" }).Address
		got := checkout.RestoreSession(
			checkout.PersistedState{ShippingInfo: &broken, PaymentMethod: "WIRE"},
			checkout.TransientState{CurrentStep: 7},
		)
		assert.Nil(t, got.ShippingInfo())
		assert.Equal(t, checkout.DefaultPaymentMethod, got.PaymentMethod())
		assert.Equal(t, checkout.StepReview, got.CurrentStep())
	})

	t.Run("zero values give a fresh session", func(t *testing.T) {
		got := checkout.RestoreSession(checkout.PersistedState{}, checkout.TransientState{})
		assert.Equal(t, checkout.NewSession().Transient(), got.Transient())
		assert.Equal(t, checkout.NewSession().Persisted(), got.Persisted())
	})
}
