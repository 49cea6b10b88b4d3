package coupon

import (
	"time"

	"leather-sandals-store/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Coupon struct {
	id             uuid.UUID
	code           Code
	discountType   DiscountType
	discountValue  decimal.Decimal
	minOrderAmount *decimal.Decimal
	maxDiscount    *decimal.Decimal
	usageLimit     *int
	usageCount     int
	perUserLimit   *int
	startsAt       *time.Time
	expiresAt      *time.Time
	isActive       bool
	description    *string
	createdAt      time.Time
	updatedAt      time.Time
}

// Attributes is the writable part of a coupon, shared by create and update.
type Attributes struct {
	Code           string
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	MinOrderAmount *decimal.Decimal
	MaxDiscount    *decimal.Decimal
	UsageLimit     *int
	PerUserLimit   *int
	StartsAt       *time.Time
	ExpiresAt      *time.Time
	IsActive       bool
	Description    *string
}

func NewCoupon(attrs Attributes, now time.Time) (*Coupon, error) {
	c := &Coupon{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	if err := c.apply(attrs); err != nil {
		return nil, err
	}
	return c, nil
}

// ReconstructCoupon rebuilds a coupon from storage without re-validating it.
func ReconstructCoupon(
	id uuid.UUID,
	attrs Attributes,
	usageCount int,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:             id,
		code:           Code(NormalizeCode(attrs.Code)),
		discountType:   attrs.DiscountType,
		discountValue:  attrs.DiscountValue,
		minOrderAmount: attrs.MinOrderAmount,
		maxDiscount:    attrs.MaxDiscount,
		usageLimit:     attrs.UsageLimit,
		usageCount:     usageCount,
		perUserLimit:   attrs.PerUserLimit,
		startsAt:       attrs.StartsAt,
		expiresAt:      attrs.ExpiresAt,
		isActive:       attrs.IsActive,
		description:    attrs.Description,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Update replaces the writable attributes; usage count is untouched.
func (c *Coupon) Update(attrs Attributes, now time.Time) error {
	next := *c
	if err := next.apply(attrs); err != nil {
		return err
	}
	next.updatedAt = now
	*c = next
	return nil
}

func (c *Coupon) Deactivate(now time.Time) {
	c.isActive = false
	c.updatedAt = now
}

func (c *Coupon) apply(attrs Attributes) error {
	code, err := NewCouponCode(attrs.Code)
	if err != nil {
		return err
	}
	if !attrs.DiscountType.IsValid() {
		return ErrInvalidDiscountType
	}
	if money.IsNegative(attrs.DiscountValue) || !money.InRange(attrs.DiscountValue) {
		return ErrInvalidDiscountAmount
	}
	if attrs.DiscountType == DiscountPercentage && attrs.DiscountValue.GreaterThan(money.Hundred) {
		return ErrInvalidDiscountPercent
	}
	if attrs.MinOrderAmount != nil && (money.IsNegative(*attrs.MinOrderAmount) || !money.InRange(*attrs.MinOrderAmount)) {
		return ErrInvalidMinOrderAmount
	}
	if attrs.MaxDiscount != nil && (money.IsNegative(*attrs.MaxDiscount) || !money.InRange(*attrs.MaxDiscount)) {
		return ErrInvalidMaxDiscount
	}
	if (attrs.UsageLimit != nil && *attrs.UsageLimit < 0) || (attrs.PerUserLimit != nil && *attrs.PerUserLimit < 0) {
		return ErrInvalidUsageLimit
	}
	if attrs.StartsAt != nil && attrs.ExpiresAt != nil && !attrs.ExpiresAt.After(*attrs.StartsAt) {
		return ErrInvalidActiveWindow
	}

	c.code = code
	c.discountType = attrs.DiscountType
	c.discountValue = attrs.DiscountValue
	c.minOrderAmount = attrs.MinOrderAmount
	c.maxDiscount = attrs.MaxDiscount
	c.usageLimit = attrs.UsageLimit
	c.perUserLimit = attrs.PerUserLimit
	c.startsAt = attrs.StartsAt
	c.expiresAt = attrs.ExpiresAt
	c.isActive = attrs.IsActive
	c.description = attrs.Description
	return nil
}

// IsUsableAt reports whether the coupon is active, inside its window and
// below its global usage cap. Subtotal rules are not considered.
func (c *Coupon) IsUsableAt(now time.Time) bool {
	return c.checkUsable(now) == ""
}

func (c *Coupon) HasUsageRemaining() bool {
	return c.usageLimit == nil || c.usageCount < *c.usageLimit
}

func (c *Coupon) Attributes() Attributes {
	return Attributes{
		Code:           c.code.String(),
		DiscountType:   c.discountType,
		DiscountValue:  c.discountValue,
		MinOrderAmount: c.minOrderAmount,
		MaxDiscount:    c.maxDiscount,
		UsageLimit:     c.usageLimit,
		PerUserLimit:   c.perUserLimit,
		StartsAt:       c.startsAt,
		ExpiresAt:      c.expiresAt,
		IsActive:       c.isActive,
		Description:    c.description,
	}
}

func (c *Coupon) ID() uuid.UUID                    { return c.id }
func (c *Coupon) Code() Code                       { return c.code }
func (c *Coupon) DiscountType() DiscountType       { return c.discountType }
func (c *Coupon) DiscountValue() decimal.Decimal   { return c.discountValue }
func (c *Coupon) MinOrderAmount() *decimal.Decimal { return c.minOrderAmount }
func (c *Coupon) MaxDiscount() *decimal.Decimal    { return c.maxDiscount }
func (c *Coupon) UsageLimit() *int                 { return c.usageLimit }
func (c *Coupon) UsageCount() int                  { return c.usageCount }
func (c *Coupon) PerUserLimit() *int               { return c.perUserLimit }
func (c *Coupon) StartsAt() *time.Time             { return c.startsAt }
func (c *Coupon) ExpiresAt() *time.Time            { return c.expiresAt }
func (c *Coupon) IsActive() bool                   { return c.isActive }
func (c *Coupon) Description() *string             { return c.description }
func (c *Coupon) CreatedAt() time.Time             { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time             { return c.updatedAt }
