//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func TestCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().WithCode("  bulten10 ").BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, coupon.Code("BULTEN10"), actual.Code())
		assert.Equal(t, 0, actual.UsageCount())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.True(t, actual.IsActive())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "lower case is normalized", mutate: func(b *builder.CouponBuilder) { b.WithCode("yaz-25") }},
			{name: "too short", mutate: func(b *builder.CouponBuilder) { b.WithCode("AB") }, errIs: coupon.ErrInvalidCouponCode},
			{name: "illegal character", mutate: func(b *builder.CouponBuilder) { b.WithCode("YAZ 25") }, errIs: coupon.ErrInvalidCouponCode},
			{name: "empty", mutate: func(b *builder.CouponBuilder) { b.WithCode("") }, errIs: coupon.ErrInvalidCouponCode},
		})
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "percentage of 100", mutate: func(b *builder.CouponBuilder) { b.AsPercentage("100") }},
			{name: "percentage above 100", mutate: func(b *builder.CouponBuilder) { b.AsPercentage("100.01") }, errIs: coupon.ErrInvalidDiscountPercent},
			{name: "fixed above 100", mutate: func(b *builder.CouponBuilder) { b.AsFixed("250") }},
			{name: "negative value", mutate: func(b *builder.CouponBuilder) { b.AsFixed("-1") }, errIs: coupon.ErrInvalidDiscountAmount},
			{name: "negative minimum", mutate: func(b *builder.CouponBuilder) { b.WithMinOrder("-5") }, errIs: coupon.ErrInvalidMinOrderAmount},
			{name: "negative max discount", mutate: func(b *builder.CouponBuilder) { b.WithMaxDiscount("-5") }, errIs: coupon.ErrInvalidMaxDiscount},
			{name: "fixed above column ceiling", mutate: func(b *builder.CouponBuilder) { b.AsFixed("1e20000000") }, errIs: coupon.ErrInvalidDiscountAmount},
			{name: "minimum above column ceiling", mutate: func(b *builder.CouponBuilder) { b.WithMinOrder("10000000000") }, errIs: coupon.ErrInvalidMinOrderAmount},
			{name: "max discount with huge exponent", mutate: func(b *builder.CouponBuilder) { b.WithMaxDiscount("5e999999") }, errIs: coupon.ErrInvalidMaxDiscount},
			{name: "negative usage limit", mutate: func(b *builder.CouponBuilder) { b.WithUsage(-1, 0) }, errIs: coupon.ErrInvalidUsageLimit},
			{name: "negative per user limit", mutate: func(b *builder.CouponBuilder) { b.WithPerUserLimit(-1) }, errIs: coupon.ErrInvalidUsageLimit},
			{name: "unknown discount type", mutate: func(b *builder.CouponBuilder) { b.DiscountType = "BOGO" }, errIs: coupon.ErrInvalidDiscountType},
		})
	})

	t.Run("window validation", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(24 * time.Hour)
		runCases(t, []testCase{
			{name: "open ended", mutate: func(b *builder.CouponBuilder) { b.WithWindow(&start, nil) }},
			{name: "bounded", mutate: func(b *builder.CouponBuilder) { b.WithWindow(&start, &end) }},
			{name: "expiry before start", mutate: func(b *builder.CouponBuilder) { b.WithWindow(&end, &start) }, errIs: coupon.ErrInvalidActiveWindow},
			{name: "expiry equals start", mutate: func(b *builder.CouponBuilder) { b.WithWindow(&start, &start) }, errIs: coupon.ErrInvalidActiveWindow},
		})
	})

	t.Run("update keeps usage count and bumps updatedAt", func(t *testing.T) {
		b := builder.NewCouponBuilder().WithUsage(10, 4)
		c := b.BuildStored()
		later := b.Now.Add(time.Hour)

		attrs := c.Attributes()
		attrs.DiscountValue = decimal.NewFromInt(15)
		require.NoError(t, c.Update(attrs, later))

		assert.True(t, decimal.NewFromInt(15).Equal(c.DiscountValue()))
		assert.Equal(t, 4, c.UsageCount())
		assert.Equal(t, later, c.UpdatedAt())
	})

	t.Run("failed update leaves coupon unchanged", func(t *testing.T) {
		c := builder.NewCouponBuilder().BuildStored()
		attrs := c.Attributes()
		attrs.Code = "x"

		err := c.Update(attrs, time.Now())
		require.ErrorIs(t, err, coupon.ErrInvalidCouponCode)
		assert.Equal(t, coupon.Code("BULTEN10"), c.Code())
	})

	t.Run("deactivate", func(t *testing.T) {
		b := builder.NewCouponBuilder()
		c := b.BuildStored()
		c.Deactivate(b.Now)
		assert.False(t, c.IsActive())
		assert.False(t, c.IsUsableAt(b.Now))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCouponBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
