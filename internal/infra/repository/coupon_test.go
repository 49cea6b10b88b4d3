//go:build unit

package repository

import (
	"context"
	"testing"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/converter"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCouponWriteQueries struct {
	mock.Mock
}

func (m *MockCouponWriteQueries) CreateCoupon(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertCouponParams) (pgquery.Coupons, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pgquery.Coupons), args.Error(1)
}

func (m *MockCouponWriteQueries) UpdateCoupon(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertCouponParams) (pgquery.Coupons, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pgquery.Coupons), args.Error(1)
}

func (m *MockCouponWriteQueries) IncrementCouponUsage(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCouponWriteQueries) CreateCouponRedemption(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateCouponRedemptionParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func couponRowFromParams(p pgquery.UpsertCouponParams) pgquery.Coupons {
	return pgquery.Coupons{
		ID:             p.ID,
		Code:           p.Code,
		DiscountType:   p.DiscountType,
		DiscountValue:  p.DiscountValue,
		MinOrderAmount: p.MinOrderAmount,
		MaxDiscount:    p.MaxDiscount,
		UsageLimit:     p.UsageLimit,
		PerUserLimit:   p.PerUserLimit,
		StartsAt:       p.StartsAt,
		ExpiresAt:      p.ExpiresAt,
		IsActive:       p.IsActive,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func TestCouponRepositoryCreate(t *testing.T) {
	c, err := builder.NewCouponBuilder().WithMinOrder("500").WithUsage(100, 0).BuildDomain()
	require.NoError(t, err)
	params := converter.CouponToUpsertParams(c)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate code", mockErr: errUniqueViolation, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockCouponWriteQueries)
			row := pgquery.Coupons{}
			if tt.mockErr == nil {
				row = couponRowFromParams(params)
			}
			q.On("CreateCoupon", mock.Anything, mock.Anything, params).Return(row, tt.mockErr)

			repo := NewCouponRepository(q, stubDB{}, discardLogger())
			got, err := repo.Create(context.Background(), stubDB{}, c)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, c.ID(), got.ID())
				assert.Equal(t, c.Code(), got.Code())
				assert.True(t, got.MinOrderAmount().Equal(decimal.NewFromInt(500)))
				assert.Equal(t, 100, *got.UsageLimit())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestCouponRepositoryIncrementUsage(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "incremented", affected: 1},
		{name: "limit reached", affected: 0, wantKind: infra.KindConflict},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockCouponWriteQueries)
			q.On("IncrementCouponUsage", mock.Anything, mock.Anything, id).Return(tt.affected, tt.mockErr)

			repo := NewCouponRepository(q, stubDB{}, discardLogger())
			err := repo.IncrementUsage(context.Background(), stubDB{}, id)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestCouponRepositoryRecordRedemption(t *testing.T) {
	couponID, userID, orderID := uuid.New(), uuid.New(), uuid.New()
	discount := decimal.RequireFromString("125.50")
	want := pgquery.CreateCouponRedemptionParams{CouponID: couponID, UserID: userID, OrderID: orderID, Discount: discount}

	q := new(MockCouponWriteQueries)
	q.On("CreateCouponRedemption", mock.Anything, mock.Anything, want).Return(errFKViolation).Once()

	repo := NewCouponRepository(q, stubDB{}, discardLogger())
	err := repo.RecordRedemption(context.Background(), stubDB{}, couponID, userID, orderID, discount)

	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	q.AssertExpectations(t)
}
