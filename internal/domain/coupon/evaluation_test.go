//go:build unit

package coupon_test

import (
	"fmt"
	"testing"
	"time"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name     string
			mutate   func(*builder.CouponBuilder)
			subtotal string
			reason   coupon.Reason
			sentinel error
		}{
			{
				name:     "inactive wins over everything else",
				mutate:   func(b *builder.CouponBuilder) { b.AsInactive().AsFixed("50").WithWindow(&future, nil).WithUsage(1, 1) },
				subtotal: "1000",
				reason:   coupon.ReasonInactive,
				sentinel: coupon.ErrInactive,
			},
			{
				name:     "not yet started",
				mutate:   func(b *builder.CouponBuilder) { b.WithWindow(&future, nil).WithUsage(1, 1) },
				subtotal: "1000",
				reason:   coupon.ReasonNotYetStarted,
				sentinel: coupon.ErrNotYetStarted,
			},
			{
				name:     "expired",
				mutate:   func(b *builder.CouponBuilder) { b.WithWindow(nil, &past).WithUsage(1, 1) },
				subtotal: "1000",
				reason:   coupon.ReasonExpired,
				sentinel: coupon.ErrExpired,
			},
			{
				name:     "usage limit reached",
				mutate:   func(b *builder.CouponBuilder) { b.WithUsage(100, 100) },
				subtotal: "1000",
				reason:   coupon.ReasonUsageLimitReached,
				sentinel: coupon.ErrUsageLimitReached,
			},
			{
				name:     "usage count above limit",
				mutate:   func(b *builder.CouponBuilder) { b.WithUsage(5, 7).WithMinOrder("5000") },
				subtotal: "1000",
				reason:   coupon.ReasonUsageLimitReached,
				sentinel: coupon.ErrUsageLimitReached,
			},
			{
				name:     "below minimum",
				mutate:   func(b *builder.CouponBuilder) { b.WithMinOrder("500") },
				subtotal: "499.99",
				reason:   coupon.ReasonBelowMinimum,
				sentinel: coupon.ErrBelowMinimum,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c := builder.NewCouponBuilder().With(tc.mutate).BuildStored()

				result, err := coupon.Evaluate(c, dec(tc.subtotal), now)

				require.Nil(t, result)
				rej, ok := coupon.AsRejection(err)
				require.True(t, ok)
				assert.Equal(t, tc.reason, rej.Reason)
				assert.ErrorIs(t, err, tc.sentinel)
			})
		}
	})

	t.Run("nil coupon is not found", func(t *testing.T) {
		_, err := coupon.Evaluate(nil, dec("100"), now)
		require.ErrorIs(t, err, coupon.ErrNotFound)
		assert.NotErrorIs(t, err, coupon.ErrInactive)
	})

	t.Run("below minimum carries the minimum", func(t *testing.T) {
		c := builder.NewCouponBuilder().WithMinOrder("750").BuildStored()
		_, err := coupon.Evaluate(c, dec("100"), now)

		rej, ok := coupon.AsRejection(fmt.Errorf("wrapped: %w", err))
		require.True(t, ok)
		require.NotNil(t, rej.MinOrderAmount)
		assert.Equal(t, "750.00", rej.MinOrderAmount.StringFixed(2))
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		c := builder.NewCouponBuilder().WithWindow(&now, &now).BuildStored()
		result, err := coupon.Evaluate(c, dec("100"), now)
		require.NoError(t, err)
		assert.True(t, dec("10").Equal(result.Discount))
	})

	t.Run("percentage on bulletin coupon", func(t *testing.T) {
		c := builder.NewCouponBuilder().WithMinOrder("0").BuildStored()

		result, err := coupon.Evaluate(c, dec("1500"), now)
		require.NoError(t, err)

		assert.Equal(t, coupon.Code("BULTEN10"), result.Code)
		assert.Equal(t, coupon.DiscountPercentage, result.DiscountType)
		assert.True(t, dec("150").Equal(result.Discount))
		assert.True(t, dec("1350").Equal(result.Total(dec("1500"))))
	})

	t.Run("fixed amount inactive example", func(t *testing.T) {
		c := builder.NewCouponBuilder().AsFixed("50").AsInactive().BuildStored()
		_, err := coupon.Evaluate(c, dec("1000"), now)
		require.ErrorIs(t, err, coupon.ErrInactive)
	})

	t.Run("discount computation", func(t *testing.T) {
		cases := []struct {
			name     string
			mutate   func(*builder.CouponBuilder)
			subtotal string
			want     string
		}{
			{name: "percentage without cap", mutate: func(b *builder.CouponBuilder) { b.AsPercentage("15") }, subtotal: "200", want: "30"},
			{name: "percentage rounds to kurus", mutate: func(b *builder.CouponBuilder) { b.AsPercentage("12.5") }, subtotal: "99.99", want: "12.50"},
			{name: "percentage rounds half away from zero", mutate: func(b *builder.CouponBuilder) { b.AsPercentage("10") }, subtotal: "0.05", want: "0.01"},
			{name: "percentage capped by max discount", mutate: func(b *builder.CouponBuilder) { b.AsPercentage("50").WithMaxDiscount("100") }, subtotal: "1000", want: "100"},
			{name: "percentage under cap", mutate: func(b *builder.CouponBuilder) { b.AsPercentage("5").WithMaxDiscount("100") }, subtotal: "1000", want: "50"},
			{name: "fixed amount", mutate: func(b *builder.CouponBuilder) { b.AsFixed("75") }, subtotal: "300", want: "75"},
			{name: "fixed clamped to subtotal", mutate: func(b *builder.CouponBuilder) { b.AsFixed("500") }, subtotal: "320.40", want: "320.40"},
			{name: "max discount ignored for fixed", mutate: func(b *builder.CouponBuilder) { b.AsFixed("80").WithMaxDiscount("20") }, subtotal: "300", want: "80"},
			{name: "hundred percent equals subtotal", mutate: func(b *builder.CouponBuilder) { b.AsPercentage("100") }, subtotal: "845.90", want: "845.90"},
			{name: "zero subtotal", mutate: func(b *builder.CouponBuilder) { b.AsFixed("50") }, subtotal: "0", want: "0"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c := builder.NewCouponBuilder().With(tc.mutate).BuildStored()
				result, err := coupon.Evaluate(c, dec(tc.subtotal), now)
				require.NoError(t, err)
				assert.Truef(t, dec(tc.want).Equal(result.Discount), "want %s, got %s", tc.want, result.Discount)
			})
		}
	})

	t.Run("discount bounds hold across a grid", func(t *testing.T) {
		subtotals := []string{"0", "0.01", "9.99", "100", "333.33", "1499.95", "25000"}
		values := []string{"0", "1", "7.5", "33.33", "50", "100"}
		maxCap := dec("120")

		for _, s := range subtotals {
			for _, v := range values {
				subtotal := dec(s)

				pct := builder.NewCouponBuilder().AsPercentage(v).BuildStored()
				got, err := coupon.Evaluate(pct, subtotal, now)
				require.NoError(t, err)
				want := subtotal.Mul(dec(v)).Div(decimal.NewFromInt(100))
				assert.True(t, got.Discount.Sub(want).Abs().LessThanOrEqual(dec("0.005")), "pct %s of %s", v, s)
				assert.True(t, got.Discount.LessThanOrEqual(subtotal))

				capped := builder.NewCouponBuilder().AsPercentage(v).WithMaxDiscount("120").BuildStored()
				got, err = coupon.Evaluate(capped, subtotal, now)
				require.NoError(t, err)
				assert.True(t, got.Discount.LessThanOrEqual(maxCap))
				assert.True(t, got.Discount.LessThanOrEqual(subtotal))

				fixed := builder.NewCouponBuilder().AsFixed(v).BuildStored()
				got, err = coupon.Evaluate(fixed, subtotal, now)
				require.NoError(t, err)
				assert.True(t, got.Discount.LessThanOrEqual(subtotal))
				assert.False(t, got.Discount.IsNegative())
			}
		}
	})

	t.Run("evaluation does not mutate the coupon", func(t *testing.T) {
		c := builder.NewCouponBuilder().WithUsage(10, 3).BuildStored()
		before := c.Attributes()
		_, err := coupon.Evaluate(c, dec("100"), now)
		require.NoError(t, err)
		assert.Equal(t, before, c.Attributes())
		assert.Equal(t, 3, c.UsageCount())
	})
}
