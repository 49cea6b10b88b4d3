//go:build unit

package coupon_test

import (
	"testing"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := coupon.NewFilter(coupon.FilterParams{})
		require.NoError(t, err)
		assert.Equal(t, coupon.DefaultFilterLimit, f.Limit())
		assert.Nil(t, f.Active())
		assert.Nil(t, f.Type())
		assert.Nil(t, f.CodePrefix())
	})

	t.Run("normalizes type and prefix", func(t *testing.T) {
		f, err := coupon.NewFilter(coupon.FilterParams{Type: ptr.To("percentage"), CodePrefix: ptr.To(" yaz")})
		require.NoError(t, err)
		assert.Equal(t, coupon.DiscountPercentage, *f.Type())
		assert.Equal(t, "YAZ", *f.CodePrefix())
	})

	t.Run("blank prefix is dropped", func(t *testing.T) {
		f, err := coupon.NewFilter(coupon.FilterParams{CodePrefix: ptr.To("  ")})
		require.NoError(t, err)
		assert.Nil(t, f.CodePrefix())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := coupon.NewFilter(coupon.FilterParams{Limit: 101})
		assert.ErrorIs(t, err, coupon.ErrInvalidFilterLimit)

		_, err = coupon.NewFilter(coupon.FilterParams{Limit: -1})
		assert.ErrorIs(t, err, coupon.ErrInvalidFilterLimit)

		_, err = coupon.NewFilter(coupon.FilterParams{Offset: -1})
		assert.ErrorIs(t, err, coupon.ErrInvalidFilterOffset)

		_, err = coupon.NewFilter(coupon.FilterParams{Type: ptr.To("bogo")})
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountType)
	})
}
