//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/pkg/clock"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/usecase/queries"
	"leather-sandals-store/tests/common/builder"
	queriesmock "leather-sandals-store/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newCouponQueries(t *testing.T) (queries.CouponQueries, *queriesmock.MockCouponReadStore) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	return queries.NewCouponQueries(store, clock.NewMockClock(now)), store
}

func TestValidate(t *testing.T) {
	subtotal := decimal.RequireFromString("1200.00")

	t.Run("accepted coupon carries the discount", func(t *testing.T) {
		q, store := newCouponQueries(t)
		c := builder.NewCouponBuilder().WithMaxDiscount("100").BuildStored()
		store.EXPECT().FindByCode(gomock.Any(), "BULTEN10").Return(c, nil)

		got, err := q.Validate(context.Background(), "BULTEN10", subtotal, nil)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(got.Discount))
		assert.Equal(t, "BULTEN10", got.Code.String())
	})

	t.Run("unknown code is a NOT_FOUND rejection", func(t *testing.T) {
		q, store := newCouponQueries(t)
		store.EXPECT().FindByCode(gomock.Any(), "YOKBOYLE").
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := q.Validate(context.Background(), "YOKBOYLE", subtotal, nil)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCouponRejected))
		rej, ok := coupon.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, coupon.ReasonNotFound, rej.Reason)
	})

	t.Run("below minimum reports the threshold", func(t *testing.T) {
		q, store := newCouponQueries(t)
		c := builder.NewCouponBuilder().WithMinOrder("1500").BuildStored()
		store.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(c, nil)

		_, err := q.Validate(context.Background(), "BULTEN10", subtotal, nil)

		rej, ok := coupon.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, coupon.ReasonBelowMinimum, rej.Reason)
		require.NotNil(t, rej.MinOrderAmount)
		assert.True(t, decimal.NewFromInt(1500).Equal(*rej.MinOrderAmount))
	})

	t.Run("anonymous caller skips the per-user check", func(t *testing.T) {
		q, store := newCouponQueries(t)
		c := builder.NewCouponBuilder().WithPerUserLimit(1).BuildStored()
		store.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(c, nil)

		_, err := q.Validate(context.Background(), "BULTEN10", subtotal, nil)

		assert.NoError(t, err)
	})

	t.Run("known caller over the per-user limit", func(t *testing.T) {
		q, store := newCouponQueries(t)
		userID := uuid.New()
		c := builder.NewCouponBuilder().WithPerUserLimit(2).BuildStored()
		store.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(c, nil)
		store.EXPECT().CountRedemptions(gomock.Any(), c.ID(), userID).Return(2, nil)

		_, err := q.Validate(context.Background(), "BULTEN10", subtotal, &userID)

		assert.ErrorIs(t, err, errs.ErrPerUserLimitReached)
	})

	t.Run("store failure", func(t *testing.T) {
		q, store := newCouponQueries(t)
		store.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, errors.New("pool closed"))

		_, err := q.Validate(context.Background(), "BULTEN10", subtotal, nil)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestListCoupons(t *testing.T) {
	q, store := newCouponQueries(t)
	filter, err := coupon.NewFilter(coupon.FilterParams{Limit: 2, Offset: 4})
	require.NoError(t, err)
	first := builder.NewCouponBuilder().WithCode("YAZ25").BuildStored()
	second := builder.NewCouponBuilder().WithCode("KIS15").AsInactive().BuildStored()
	store.EXPECT().List(gomock.Any(), filter).Return([]*coupon.Coupon{first, second}, int64(7), nil)

	page, err := q.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, int64(7), page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 4, page.Offset)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "YAZ25", page.Items[0].Code)
	assert.False(t, page.Items[1].IsActive)
}

func TestGetCouponByID(t *testing.T) {
	q, store := newCouponQueries(t)
	id := uuid.New()
	store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

	_, err := q.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, errs.ErrCouponNotFound)
}
