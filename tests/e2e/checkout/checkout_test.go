//go:build e2e

package checkout_test

import (
	"net/http"
	"testing"

	"leather-sandals-store/internal/handler/dto/response"
	"leather-sandals-store/internal/pkg/cookie"
	"leather-sandals-store/tests/common/httptest"
	"leather-sandals-store/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

var shipping = map[string]any{
	"title":     "Ev",
	"firstName": "Ayşe",
	"lastName":  "Yılmaz",
	"phone":     " 05321234567 ",
	"address":   "Bağdat Caddesi No:12 D:4",
	"city":      "İstanbul",
	"district":  "Kadıköy",
}

func (s *checkoutSuite) state(c *e2e.Client) response.CheckoutResponse {
	w := c.Do(http.MethodGet, "/api/checkout", nil)
	var res response.CheckoutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *checkoutSuite) TestWizard() {
	s.Run("fresh session starts on shipping with cash on delivery", func() {
		c := s.NewClient()
		res := s.state(c)

		require.Equal(s.T(), 1, res.CurrentStep)
		require.Equal(s.T(), "CASH_ON_DELIVERY", res.PaymentMethod)
		require.False(s.T(), res.CanProceedToPayment)
		require.NotNil(s.T(), c.Cookie(cookie.CheckoutSessionCookieName))
	})

	s.Run("next is blocked until the address is valid", func() {
		t := s.T()
		c := s.NewClient()

		w := c.Do(http.MethodPost, "/api/checkout/next", nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "önceki adımları")

		bad := map[string]any{"firstName": "A", "city": "İstanbul"}
		w = c.Do(http.MethodPut, "/api/checkout/shipping", bad)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Adres bilgileri")
		require.Contains(t, w.Body.String(), "phone")

		w = c.Do(http.MethodPut, "/api/checkout/shipping", shipping)
		var res response.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.CanProceedToPayment)
		require.Equal(t, "05321234567", res.ShippingInfo.Phone)

		w = c.Do(http.MethodPost, "/api/checkout/next", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 2, res.CurrentStep)
	})

	s.Run("state survives across requests and can be reset", func() {
		t := s.T()
		c := s.NewClient()

		c.Do(http.MethodPut, "/api/checkout/shipping", shipping)
		w := c.Do(http.MethodPut, "/api/checkout/payment", map[string]any{"paymentMethod": "CARD"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		c.Do(http.MethodPut, "/api/checkout/consents", map[string]any{"acceptedTerms": true, "acceptedKvkk": true})

		w = c.Do(http.MethodPost, "/api/checkout/step", map[string]any{"step": 3})
		var res response.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 3, res.CurrentStep)
		require.True(t, res.CanPlaceOrder)

		res = s.state(c)
		require.Equal(t, "CARD", res.PaymentMethod)
		require.Equal(t, "Kadıköy", res.ShippingInfo.District)

		w = c.Do(http.MethodPost, "/api/checkout/prev", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 2, res.CurrentStep)

		w = c.Do(http.MethodPost, "/api/checkout/reset", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 1, res.CurrentStep)
		require.Nil(t, res.ShippingInfo)
		require.False(t, res.AcceptedTerms)
	})

	s.Run("unknown payment method is rejected", func() {
		c := s.NewClient()
		w := c.Do(http.MethodPut, "/api/checkout/payment", map[string]any{"paymentMethod": "BITCOIN"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid payment method")
	})

	s.Run("two browsers do not share a wizard", func() {
		t := s.T()
		first := s.NewClient()
		second := s.NewClient()

		first.Do(http.MethodPut, "/api/checkout/shipping", shipping)

		require.NotNil(t, s.state(first).ShippingInfo)
		require.Nil(t, s.state(second).ShippingInfo)
	})
}
