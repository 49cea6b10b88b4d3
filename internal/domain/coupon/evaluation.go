package coupon

import (
	"time"

	"leather-sandals-store/internal/pkg/money"

	"github.com/shopspring/decimal"
)

type Evaluation struct {
	Code          Code
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MaxDiscount   *decimal.Decimal
	Discount      decimal.Decimal
	Description   *string
}

// Evaluate decides whether c applies to subtotal at now and computes the
// discount. A nil coupon means the code did not resolve. Checks run in a
// fixed order and the first failure is reported.
func Evaluate(c *Coupon, subtotal decimal.Decimal, now time.Time) (*Evaluation, error) {
	if c == nil {
		return nil, Reject(ReasonNotFound)
	}
	if reason := c.checkUsable(now); reason != "" {
		return nil, Reject(reason)
	}
	if c.minOrderAmount != nil && subtotal.LessThan(*c.minOrderAmount) {
		minimum := *c.minOrderAmount
		return nil, &RejectionError{Reason: ReasonBelowMinimum, MinOrderAmount: &minimum}
	}

	return &Evaluation{
		Code:          c.code,
		DiscountType:  c.discountType,
		DiscountValue: c.discountValue,
		MaxDiscount:   c.maxDiscount,
		Discount:      c.discountFor(subtotal),
		Description:   c.description,
	}, nil
}

func (c *Coupon) checkUsable(now time.Time) Reason {
	switch {
	case !c.isActive:
		return ReasonInactive
	case c.startsAt != nil && c.startsAt.After(now):
		return ReasonNotYetStarted
	case c.expiresAt != nil && c.expiresAt.Before(now):
		return ReasonExpired
	case !c.HasUsageRemaining():
		return ReasonUsageLimitReached
	}
	return ""
}

func (c *Coupon) discountFor(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.discountType {
	case DiscountPercentage:
		discount = money.Round(subtotal.Mul(c.discountValue).Div(money.Hundred))
		if c.maxDiscount != nil && discount.GreaterThan(*c.maxDiscount) {
			discount = *c.maxDiscount
		}
	case DiscountFixedAmount:
		discount = c.discountValue
	}

	upper := subtotal
	if money.IsNegative(upper) {
		upper = money.Zero
	}
	return money.Clamp(discount, money.Zero, upper)
}

// Total is subtotal minus the discount, never negative.
func (e *Evaluation) Total(subtotal decimal.Decimal) decimal.Decimal {
	return decimal.Max(subtotal.Sub(e.Discount), money.Zero)
}
