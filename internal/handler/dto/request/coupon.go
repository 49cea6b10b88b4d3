package request

import (
	"time"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/pkg/money"
	"leather-sandals-store/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// ValidateCouponRequest uses pointers so a missing field is told apart from
// a zero value.
type ValidateCouponRequest struct {
	Code     *string          `json:"code"`
	Subtotal *decimal.Decimal `json:"subtotal"`
}

// HasValidSubtotal is false for a missing, negative or oversized subtotal.
func (r *ValidateCouponRequest) HasValidSubtotal() bool {
	return r.Subtotal != nil && !r.Subtotal.IsNegative() && money.InRange(*r.Subtotal)
}

type CreateCouponRequest struct {
	Code           string           `json:"code" binding:"required,min=3,max=32"`
	DiscountType   string           `json:"discountType" binding:"required,oneof=PERCENTAGE FIXED_AMOUNT percentage fixed"`
	DiscountValue  decimal.Decimal  `json:"discountValue"`
	MinOrderAmount *decimal.Decimal `json:"minOrderAmount,omitempty"`
	MaxDiscount    *decimal.Decimal `json:"maxDiscount,omitempty"`
	UsageLimit     *int             `json:"usageLimit,omitempty" binding:"omitempty,min=0"`
	PerUserLimit   *int             `json:"perUserLimit,omitempty" binding:"omitempty,min=0"`
	StartsAt       *time.Time       `json:"startsAt,omitempty"`
	ExpiresAt      *time.Time       `json:"expiresAt,omitempty"`
	IsActive       *bool            `json:"isActive,omitempty"`
	Description    *string          `json:"description,omitempty" binding:"omitempty,max=500"`
}

func (r *CreateCouponRequest) ToAttributes() (coupon.Attributes, error) {
	discountType, err := parseDiscountType(r.DiscountType)
	if err != nil {
		return coupon.Attributes{}, err
	}
	return coupon.Attributes{
		Code:           r.Code,
		DiscountType:   discountType,
		DiscountValue:  r.DiscountValue,
		MinOrderAmount: r.MinOrderAmount,
		MaxDiscount:    r.MaxDiscount,
		UsageLimit:     r.UsageLimit,
		PerUserLimit:   r.PerUserLimit,
		StartsAt:       r.StartsAt,
		ExpiresAt:      r.ExpiresAt,
		IsActive:       patch.Coalesce(r.IsActive, true),
		Description:    r.Description,
	}, nil
}

// UpdateCouponRequest is a PATCH body. Plain pointers leave the field
// unchanged when absent; Nullable fields can also be cleared with null.
type UpdateCouponRequest struct {
	Code           *string                         `json:"code" binding:"omitempty,min=3,max=32"`
	DiscountType   *string                         `json:"discountType" binding:"omitempty,oneof=PERCENTAGE FIXED_AMOUNT percentage fixed"`
	DiscountValue  *decimal.Decimal                `json:"discountValue"`
	MinOrderAmount patch.Nullable[decimal.Decimal] `json:"minOrderAmount"`
	MaxDiscount    patch.Nullable[decimal.Decimal] `json:"maxDiscount"`
	UsageLimit     patch.Nullable[int]             `json:"usageLimit"`
	PerUserLimit   patch.Nullable[int]             `json:"perUserLimit"`
	StartsAt       patch.Nullable[time.Time]       `json:"startsAt"`
	ExpiresAt      patch.Nullable[time.Time]       `json:"expiresAt"`
	IsActive       *bool                           `json:"isActive"`
	Description    patch.Nullable[string]          `json:"description"`
}

// ApplyTo coalesces the request onto existing attributes.
func (r *UpdateCouponRequest) ApplyTo(existing coupon.Attributes) (coupon.Attributes, error) {
	discountType := existing.DiscountType
	if r.DiscountType != nil {
		t, err := parseDiscountType(*r.DiscountType)
		if err != nil {
			return coupon.Attributes{}, err
		}
		discountType = t
	}
	return coupon.Attributes{
		Code:           patch.Coalesce(r.Code, existing.Code),
		DiscountType:   discountType,
		DiscountValue:  patch.Coalesce(r.DiscountValue, existing.DiscountValue),
		MinOrderAmount: patch.CoalesceNullable(r.MinOrderAmount, existing.MinOrderAmount),
		MaxDiscount:    patch.CoalesceNullable(r.MaxDiscount, existing.MaxDiscount),
		UsageLimit:     patch.CoalesceNullable(r.UsageLimit, existing.UsageLimit),
		PerUserLimit:   patch.CoalesceNullable(r.PerUserLimit, existing.PerUserLimit),
		StartsAt:       patch.CoalesceNullable(r.StartsAt, existing.StartsAt),
		ExpiresAt:      patch.CoalesceNullable(r.ExpiresAt, existing.ExpiresAt),
		IsActive:       patch.Coalesce(r.IsActive, existing.IsActive),
		Description:    patch.CoalesceNullable(r.Description, existing.Description),
	}, nil
}

type ListCouponsRequest struct {
	Active     *bool   `form:"active"`
	Type       *string `form:"type"`
	CodePrefix *string `form:"code"`
	UsableNow  bool    `form:"usable"`
	Limit      int     `form:"limit"`
	Offset     int     `form:"offset"`
}

func (r *ListCouponsRequest) ToFilter(now time.Time) (coupon.Filter, error) {
	params := coupon.FilterParams{
		Active:     r.Active,
		CodePrefix: r.CodePrefix,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
	if r.Type != nil {
		t, err := parseDiscountType(*r.Type)
		if err != nil {
			return coupon.Filter{}, err
		}
		s := t.String()
		params.Type = &s
	}
	if r.UsableNow {
		params.UsableAt = &now
	}
	return coupon.NewFilter(params)
}

// parseDiscountType also accepts the wire names used by the validate
// response.
func parseDiscountType(s string) (coupon.DiscountType, error) {
	switch s {
	case "percentage":
		return coupon.DiscountPercentage, nil
	case "fixed":
		return coupon.DiscountFixedAmount, nil
	}
	return coupon.NewDiscountType(s)
}
