package api

import (
	"errors"
	"net/http"

	"leather-sandals-store/internal/domain/coupon"
	reqdto "leather-sandals-store/internal/handler/dto/request"
	resdto "leather-sandals-store/internal/handler/dto/response"
	"leather-sandals-store/internal/handler/httperr"
	"leather-sandals-store/internal/handler/middleware"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/pkg/i18n"
	"leather-sandals-store/internal/usecase/commands"
	"leather-sandals-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotentReplayedHeader = "Idempotent-Replayed"

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place order
// @Description Places an order from the checkout session. Repeating a request with the same Idempotency-Key returns the stored order.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID identifying this attempt"
// @Param request body reqdto.PlaceOrderRequest true "Order lines and optional coupon"
// @Success 201 {object} resdto.OrderResponse
// @Success 200 {object} resdto.OrderResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return
	}

	var req reqdto.PlaceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.orderCommands.PlaceOrder(c.Request.Context(), req, userID, idempotencyKey, checkoutSessionID(c))
	if err != nil {
		abortPlaceOrderError(c, err)
		return
	}

	res, err := resdto.FromOrderView(result.Order)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if result.IsReplayed {
		c.Header(idempotentReplayedHeader, "true")
		c.JSON(http.StatusOK, res)
		return
	}
	c.Header("Location", "/api/orders/"+res.ID.String())
	c.JSON(http.StatusCreated, res)
}

func abortPlaceOrderError(c *gin.Context, err error) {
	lang := middleware.GetLanguage(c)

	if rej, ok := coupon.AsRejection(err); ok {
		httperr.AbortWithError(c, http.StatusBadRequest, err, rejectionMessage(lang, rej), gin.H{"reason": rej.Reason.String()})
		return
	}

	switch {
	case errors.Is(err, errs.ErrIdempotencyKeyRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key header is required", nil)
	case errors.Is(err, errs.ErrIdempotencyConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency-Key reused with a different request", nil)
	case errors.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order request is currently being processed", nil)
	case errors.Is(err, errs.ErrCheckoutIncomplete):
		httperr.AbortWithError(c, http.StatusConflict, err, i18n.Translate(lang, i18n.CheckoutStepNotAllowed), nil)
	case errors.Is(err, errs.ErrEmptyOrder):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Order has no items", nil)
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, errs.ErrOutOfStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Product out of stock", nil)
	case errors.Is(err, errs.ErrPerUserLimitReached):
		httperr.AbortWithError(c, http.StatusBadRequest, err, i18n.Translate(lang, i18n.CouponPerUserLimit),
			gin.H{"reason": reasonPerUserLimitReached})
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary List my orders
// @Description Newest first, keyset paginated
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1..100)"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	var req reqdto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var cursor *queries.Cursor
	if req.Cursor != "" {
		cursor = &queries.Cursor{After: req.Cursor}
	}

	items, next, err := h.orderQueries.ListByUser(c.Request.Context(), userID, cursor, req.Limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	res, err := resdto.FromOrderList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// A missing header is passed through as uuid.Nil so the use case decides.
func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}
