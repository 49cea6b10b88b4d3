package api

import (
	"errors"
	"net/http"

	"leather-sandals-store/internal/domain/checkout"
	reqdto "leather-sandals-store/internal/handler/dto/request"
	resdto "leather-sandals-store/internal/handler/dto/response"
	"leather-sandals-store/internal/handler/httperr"
	"leather-sandals-store/internal/handler/middleware"
	"leather-sandals-store/internal/pkg/config"
	"leather-sandals-store/internal/pkg/cookie"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/pkg/i18n"
	"leather-sandals-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	cfg              config.Config
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, cfg config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		cfg:              cfg,
	}
}

// checkoutSessionID returns the checkout_sid cookie, or "" when it is
// missing or not a UUID.
func checkoutSessionID(c *gin.Context) string {
	sid := cookie.GetCheckoutSession(c)
	if _, err := uuid.Parse(sid); err != nil {
		return ""
	}
	return sid
}

// sessionID returns the visitor's checkout id, issuing a new cookie when
// the request carries no usable one.
func (h *CheckoutHandler) sessionID(c *gin.Context) string {
	if sid := checkoutSessionID(c); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	cookie.SetCheckoutSession(c, h.cfg.Cookie, sid, h.cfg.Checkout.PersistTTL)
	return sid
}

// @Summary Get checkout state
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/checkout [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	s, err := h.checkoutCommands.Get(c.Request.Context(), h.sessionID(c))
	h.respond(c, s, err)
}

// @Summary Start a new checkout
// @Description Discards the saved address, payment method and consents along with the completion flag, and returns to the first step
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/checkout/start [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	s, err := h.checkoutCommands.Start(c.Request.Context(), h.sessionID(c))
	h.respond(c, s, err)
}

// @Summary Set shipping address
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ShippingRequest true "Address"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Router /api/checkout/shipping [put]
func (h *CheckoutHandler) SetShipping(c *gin.Context) {
	var req reqdto.ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	s, err := h.checkoutCommands.SetShipping(c.Request.Context(), h.sessionID(c), req.ToDomain())
	h.respond(c, s, err)
}

// @Summary Set payment method
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentRequest true "CARD or CASH_ON_DELIVERY"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Router /api/checkout/payment [put]
func (h *CheckoutHandler) SetPayment(c *gin.Context) {
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	s, err := h.checkoutCommands.SetPayment(c.Request.Context(), h.sessionID(c), req.PaymentMethod)
	h.respond(c, s, err)
}

// @Summary Set consents
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ConsentsRequest true "Terms and KVKK consent"
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/checkout/consents [put]
func (h *CheckoutHandler) SetConsents(c *gin.Context) {
	var req reqdto.ConsentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	s, err := h.checkoutCommands.SetConsents(c.Request.Context(), h.sessionID(c), req.AcceptedTerms, req.AcceptedKvkk)
	h.respond(c, s, err)
}

// @Summary Advance one step
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/next [post]
func (h *CheckoutHandler) Next(c *gin.Context) {
	s, err := h.checkoutCommands.Next(c.Request.Context(), h.sessionID(c))
	h.respond(c, s, err)
}

// @Summary Go back one step
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/checkout/prev [post]
func (h *CheckoutHandler) Prev(c *gin.Context) {
	s, err := h.checkoutCommands.Prev(c.Request.Context(), h.sessionID(c))
	h.respond(c, s, err)
}

// @Summary Jump to a step
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.GoToStepRequest true "Target step (1..3)"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/step [post]
func (h *CheckoutHandler) GoTo(c *gin.Context) {
	var req reqdto.GoToStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	s, err := h.checkoutCommands.GoTo(c.Request.Context(), h.sessionID(c), req.Step)
	h.respond(c, s, err)
}

// @Summary Reset checkout
// @Description Clears the wizard except the saved shipping address
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/checkout/reset [post]
func (h *CheckoutHandler) Reset(c *gin.Context) {
	s, err := h.checkoutCommands.Reset(c.Request.Context(), h.sessionID(c))
	h.respond(c, s, err)
}

func (h *CheckoutHandler) respond(c *gin.Context, s *checkout.Session, err error) {
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

func (h *CheckoutHandler) abortError(c *gin.Context, err error) {
	lang := middleware.GetLanguage(c)

	switch {
	case errors.Is(err, commands.ErrStepNotAllowed):
		httperr.AbortWithError(c, http.StatusConflict, err, i18n.Translate(lang, i18n.CheckoutStepNotAllowed), nil)
	case errs.Is(err, commands.ErrInvalidAddress):
		var addrErr *checkout.AddressError
		var detail any
		if errors.As(err, &addrErr) {
			detail = gin.H{"fields": addrErr.Fields}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, i18n.Translate(lang, i18n.CheckoutInvalidAddress), detail)
	case errs.Is(err, commands.ErrInvalidPayment):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment method", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
