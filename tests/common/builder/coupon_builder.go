//go:build unit || e2e

package builder

import (
	"time"

	"leather-sandals-store/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID             uuid.UUID
	Code           string
	DiscountType   coupon.DiscountType
	DiscountValue  decimal.Decimal
	MinOrderAmount *decimal.Decimal
	MaxDiscount    *decimal.Decimal
	UsageLimit     *int
	UsageCount     int
	PerUserLimit   *int
	StartsAt       *time.Time
	ExpiresAt      *time.Time
	IsActive       bool
	Description    *string
	Now            time.Time
}

func NewCouponBuilder() *CouponBuilder {
	desc := "Bülten abonelerine %10 indirim"
	return &CouponBuilder{
		ID:            uuid.New(),
		Code:          "BULTEN10",
		DiscountType:  coupon.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		IsActive:      true,
		Description:   &desc,
		Now:           time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) Attributes() coupon.Attributes {
	return coupon.Attributes{
		Code:           b.Code,
		DiscountType:   b.DiscountType,
		DiscountValue:  b.DiscountValue,
		MinOrderAmount: b.MinOrderAmount,
		MaxDiscount:    b.MaxDiscount,
		UsageLimit:     b.UsageLimit,
		PerUserLimit:   b.PerUserLimit,
		StartsAt:       b.StartsAt,
		ExpiresAt:      b.ExpiresAt,
		IsActive:       b.IsActive,
		Description:    b.Description,
	}
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(b.Attributes(), b.Now)
}

// BuildStored skips validation, like a row read back from the database.
func (b *CouponBuilder) BuildStored() *coupon.Coupon {
	return coupon.ReconstructCoupon(b.ID, b.Attributes(), b.UsageCount, b.Now, b.Now)
}

// Fluent builder methods
func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) AsPercentage(value string) *CouponBuilder {
	b.DiscountType = coupon.DiscountPercentage
	b.DiscountValue = decimal.RequireFromString(value)
	return b
}

func (b *CouponBuilder) AsFixed(value string) *CouponBuilder {
	b.DiscountType = coupon.DiscountFixedAmount
	b.DiscountValue = decimal.RequireFromString(value)
	return b
}

func (b *CouponBuilder) WithMinOrder(amount string) *CouponBuilder {
	d := decimal.RequireFromString(amount)
	b.MinOrderAmount = &d
	return b
}

func (b *CouponBuilder) WithMaxDiscount(amount string) *CouponBuilder {
	d := decimal.RequireFromString(amount)
	b.MaxDiscount = &d
	return b
}

func (b *CouponBuilder) WithUsage(limit, count int) *CouponBuilder {
	b.UsageLimit = &limit
	b.UsageCount = count
	return b
}

func (b *CouponBuilder) WithPerUserLimit(limit int) *CouponBuilder {
	b.PerUserLimit = &limit
	return b
}

func (b *CouponBuilder) WithWindow(startsAt, expiresAt *time.Time) *CouponBuilder {
	b.StartsAt = startsAt
	b.ExpiresAt = expiresAt
	return b
}

func (b *CouponBuilder) AsInactive() *CouponBuilder {
	b.IsActive = false
	return b
}
