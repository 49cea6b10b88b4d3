package api

import (
	"errors"
	"net/http"
	"strings"

	"leather-sandals-store/internal/domain/coupon"
	reqdto "leather-sandals-store/internal/handler/dto/request"
	resdto "leather-sandals-store/internal/handler/dto/response"
	"leather-sandals-store/internal/handler/httperr"
	"leather-sandals-store/internal/handler/middleware"
	"leather-sandals-store/internal/pkg/clock"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/pkg/i18n"
	"leather-sandals-store/internal/usecase/commands"
	"leather-sandals-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

const reasonPerUserLimitReached = "PER_USER_LIMIT_REACHED"

var reasonMessages = map[coupon.Reason]string{
	coupon.ReasonNotFound:          i18n.CouponNotFound,
	coupon.ReasonInactive:          i18n.CouponInactive,
	coupon.ReasonNotYetStarted:     i18n.CouponNotYetStarted,
	coupon.ReasonExpired:           i18n.CouponExpired,
	coupon.ReasonUsageLimitReached: i18n.CouponUsageLimit,
	coupon.ReasonBelowMinimum:      i18n.CouponBelowMinimum,
}

type CouponHandler struct {
	couponQueries  queries.CouponQueries
	couponCommands commands.CouponCommands
	clock          clock.Clock
}

func NewCouponHandler(couponQueries queries.CouponQueries, couponCommands commands.CouponCommands, clk clock.Clock) *CouponHandler {
	return &CouponHandler{
		couponQueries:  couponQueries,
		couponCommands: couponCommands,
		clock:          clk,
	}
}

// @Summary Validate coupon
// @Description Checks a coupon code against a cart subtotal. Messages are localized (tr, en).
// @Tags coupons
// @Accept json
// @Produce json
// @Param lang query string false "Response language"
// @Param request body reqdto.ValidateCouponRequest true "Code and subtotal"
// @Success 200 {object} resdto.CouponValidResponse
// @Failure 400 {object} resdto.CouponInvalidResponse
// @Failure 404 {object} resdto.CouponInvalidResponse
// @Failure 429 {object} httperr.Response
// @Router /api/coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	lang := middleware.GetLanguage(c)

	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, lang, http.StatusBadRequest, err, i18n.CouponInvalidSubtotal, "")
		return
	}
	if req.Code == nil || strings.TrimSpace(*req.Code) == "" {
		invalid(c, lang, http.StatusBadRequest, nil, i18n.CouponCodeRequired, "")
		return
	}
	if !req.HasValidSubtotal() {
		invalid(c, lang, http.StatusBadRequest, nil, i18n.CouponInvalidSubtotal, "")
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	evaluation, err := h.couponQueries.Validate(c.Request.Context(), coupon.NormalizeCode(*req.Code), *req.Subtotal, userID)
	if err != nil {
		if rej, ok := coupon.AsRejection(err); ok {
			status := http.StatusBadRequest
			if rej.Reason == coupon.ReasonNotFound {
				status = http.StatusNotFound
			}
			httperr.AbortWithBody(c, status, err, resdto.CouponInvalidResponse{
				Valid:  false,
				Error:  rejectionMessage(lang, rej),
				Reason: rej.Reason.String(),
			})
			return
		}
		if errors.Is(err, errs.ErrPerUserLimitReached) {
			invalid(c, lang, http.StatusBadRequest, err, i18n.CouponPerUserLimit, reasonPerUserLimitReached)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEvaluation(evaluation))
}

func rejectionMessage(lang language.Tag, rej *coupon.RejectionError) string {
	key, ok := reasonMessages[rej.Reason]
	if !ok {
		key = i18n.CouponNotFound
	}
	if rej.Reason == coupon.ReasonBelowMinimum && rej.MinOrderAmount != nil {
		return i18n.Translate(lang, key, i18n.FormatAmount(i18n.Printer(lang), *rej.MinOrderAmount))
	}
	return i18n.Translate(lang, key)
}

func invalid(c *gin.Context, lang language.Tag, status int, err error, key, reason string) {
	httperr.AbortWithBody(c, status, err, resdto.CouponInvalidResponse{
		Valid:  false,
		Error:  i18n.Translate(lang, key),
		Reason: reason,
	})
}

// @Summary Create coupon
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.couponCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.abortWriteError(c, err)
		return
	}

	c.Header("Location", "/api/admin/coupons/"+view.ID.String())
	h.respondCoupon(c, http.StatusCreated, view)
}

// @Summary List coupons
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active flag"
// @Param type query string false "PERCENTAGE or FIXED_AMOUNT"
// @Param code query string false "Code prefix"
// @Param usable query bool false "Only coupons usable right now"
// @Param limit query int false "Page size (1..100)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.CouponListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var req reqdto.ListCouponsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := req.ToFilter(h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	page, err := h.couponQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	res, err := resdto.FromCouponPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get coupon
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.couponQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	h.respondCoupon(c, http.StatusOK, view)
}

// @Summary Update coupon
// @Description Partial update; absent fields are kept and null clears optional fields.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Changes"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/coupons/{id} [patch]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.couponCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.abortWriteError(c, err)
		return
	}

	h.respondCoupon(c, http.StatusOK, view)
}

// @Summary Deactivate coupon
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id} [delete]
func (h *CouponHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.couponCommands.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.abortWriteError(c, err)
		return
	}

	h.respondCoupon(c, http.StatusOK, view)
}

func (h *CouponHandler) abortWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, errs.ErrCouponCodeTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon code already exists", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func (h *CouponHandler) respondCoupon(c *gin.Context, status int, view *queries.CouponView) {
	res, err := resdto.FromCouponView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(status, res)
}
