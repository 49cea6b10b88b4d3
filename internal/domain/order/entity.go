package order

import (
	"time"

	"leather-sandals-store/internal/domain/checkout"
	"leather-sandals-store/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	id            uuid.UUID
	userID        uuid.UUID
	items         []Item
	shipping      checkout.Address
	paymentMethod checkout.PaymentMethod
	couponID      *uuid.UUID
	couponCode    *coupon.Code
	subtotal      decimal.Decimal
	discount      decimal.Decimal
	total         decimal.Decimal
	status        Status
	createdAt     time.Time
}

// AppliedCoupon is the coupon redeemed by an order, if any.
type AppliedCoupon struct {
	ID         uuid.UUID
	Evaluation *coupon.Evaluation
}

// NewOrder prices the order. The coupon evaluation must have been computed
// against Subtotal(items).
func NewOrder(
	userID uuid.UUID,
	items []Item,
	shipping *checkout.Address,
	paymentMethod checkout.PaymentMethod,
	applied *AppliedCoupon,
	now time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.productID]; dup {
			return nil, ErrDuplicateItem
		}
		seen[it.productID] = struct{}{}
	}
	if shipping == nil {
		return nil, ErrNoShipping
	}
	if !paymentMethod.IsValid() {
		return nil, checkout.ErrInvalidPaymentMethod
	}

	subtotal := Subtotal(items)
	o := &Order{
		id:            uuid.New(),
		userID:        userID,
		items:         append([]Item(nil), items...),
		shipping:      *shipping,
		paymentMethod: paymentMethod,
		subtotal:      subtotal,
		discount:      decimal.Zero,
		total:         subtotal,
		status:        StatusPending,
		createdAt:     now,
	}
	if applied != nil && applied.Evaluation != nil {
		id := applied.ID
		code := applied.Evaluation.Code
		o.couponID = &id
		o.couponCode = &code
		o.discount = applied.Evaluation.Discount
		o.total = applied.Evaluation.Total(subtotal)
	}
	return o, nil
}

func (o *Order) ID() uuid.UUID                         { return o.id }
func (o *Order) UserID() uuid.UUID                     { return o.userID }
func (o *Order) Items() []Item                         { return append([]Item(nil), o.items...) }
func (o *Order) Shipping() checkout.Address            { return o.shipping }
func (o *Order) PaymentMethod() checkout.PaymentMethod { return o.paymentMethod }
func (o *Order) CouponID() *uuid.UUID                  { return o.couponID }
func (o *Order) CouponCode() *coupon.Code              { return o.couponCode }
func (o *Order) Subtotal() decimal.Decimal             { return o.subtotal }
func (o *Order) Discount() decimal.Decimal             { return o.discount }
func (o *Order) Total() decimal.Decimal                { return o.total }
func (o *Order) Status() Status                        { return o.status }
func (o *Order) CreatedAt() time.Time                  { return o.createdAt }
