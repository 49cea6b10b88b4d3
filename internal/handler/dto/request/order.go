package request

import (
	"leather-sandals-store/internal/domain/coupon"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=20"`
}

type PlaceOrderRequest struct {
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,max=50,dive"`
	CouponCode *string            `json:"couponCode,omitempty"`
}

// GetCouponCode returns the normalized code, or nil when none was sent.
func (r PlaceOrderRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	code := coupon.NormalizeCode(*r.CouponCode)
	if code == "" {
		return nil
	}
	return &code
}

type ListOrdersRequest struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
