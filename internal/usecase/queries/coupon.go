package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/pkg/clock"
	"leather-sandals-store/internal/pkg/errs"
)

type CouponQueries interface {
	// Validate evaluates code against subtotal at the current time.
	// userID is optional; when set the per-user limit is checked as well.
	Validate(ctx context.Context, code string, subtotal decimal.Decimal, userID *uuid.UUID) (*coupon.Evaluation, error)
	List(ctx context.Context, filter coupon.Filter) (*CouponPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	List(ctx context.Context, filter coupon.Filter) ([]*coupon.Coupon, int64, error)
	CountRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *couponQueriesImpl) Validate(ctx context.Context, code string, subtotal decimal.Decimal, userID *uuid.UUID) (*coupon.Evaluation, error) {
	c, err := q.readStore.FindByCode(ctx, code)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	evaluation, err := coupon.Evaluate(c, subtotal, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCouponRejected)
	}

	if userID != nil && c.PerUserLimit() != nil {
		used, countErr := q.readStore.CountRedemptions(ctx, c.ID(), *userID)
		if countErr != nil {
			return nil, errs.Mark(countErr, errs.ErrDatabaseOperationFailed)
		}
		if used >= *c.PerUserLimit() {
			return nil, errs.ErrPerUserLimitReached
		}
	}

	return evaluation, nil
}

func (q *couponQueriesImpl) List(ctx context.Context, filter coupon.Filter) (*CouponPage, error) {
	coupons, total, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]*CouponView, 0, len(coupons))
	for _, c := range coupons {
		items = append(items, ToCouponView(c))
	}

	return &CouponPage{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit(),
		Offset: filter.Offset(),
	}, nil
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ToCouponView(c), nil
}

func ToCouponView(c *coupon.Coupon) *CouponView {
	return &CouponView{
		ID:             c.ID(),
		Code:           c.Code().String(),
		DiscountType:   c.DiscountType().String(),
		DiscountValue:  c.DiscountValue(),
		MinOrderAmount: c.MinOrderAmount(),
		MaxDiscount:    c.MaxDiscount(),
		UsageLimit:     c.UsageLimit(),
		UsageCount:     c.UsageCount(),
		PerUserLimit:   c.PerUserLimit(),
		StartsAt:       c.StartsAt(),
		ExpiresAt:      c.ExpiresAt(),
		IsActive:       c.IsActive(),
		Description:    c.Description(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}
