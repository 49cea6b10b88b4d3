package repository

import (
	"context"
	"log/slog"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/converter"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertCouponParams) (pgquery.Coupons, error)
	UpdateCoupon(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertCouponParams) (pgquery.Coupons, error)
	IncrementCouponUsage(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
	CreateCouponRedemption(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateCouponRedemptionParams) error
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewCouponRepository(queries CouponWriteQueries, db pgquery.DBTX, logger *slog.Logger) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CouponRepository) Create(ctx context.Context, tx pgquery.DBTX, c *coupon.Coupon) (*coupon.Coupon, error) {
	row, err := r.queries.CreateCoupon(ctx, tx, converter.CouponToUpsertParams(c))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "coupon code already exists", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create coupon", err)
	}
	return converter.CouponFromRow(row), nil
}

func (r *CouponRepository) Update(ctx context.Context, tx pgquery.DBTX, c *coupon.Coupon) (*coupon.Coupon, error) {
	row, err := r.queries.UpdateCoupon(ctx, tx, converter.CouponToUpsertParams(c))
	if err != nil {
		switch {
		case pgconv.IsNoRows(err):
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "coupon not found", err)
		case pgconv.IsUniqueViolation(err):
			return nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "coupon code already exists", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update coupon", err)
	}
	return converter.CouponFromRow(row), nil
}

// IncrementUsage fails with KindConflict once the usage limit is reached.
func (r *CouponRepository) IncrementUsage(ctx context.Context, tx pgquery.DBTX, couponID uuid.UUID) error {
	n, err := r.queries.IncrementCouponUsage(ctx, tx, couponID)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to increment coupon usage", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "coupon usage limit reached", nil)
	}
	return nil
}

func (r *CouponRepository) RecordRedemption(ctx context.Context, tx pgquery.DBTX, couponID, userID, orderID uuid.UUID, discount decimal.Decimal) error {
	err := r.queries.CreateCouponRedemption(ctx, tx, pgquery.CreateCouponRedemptionParams{
		CouponID: couponID,
		UserID:   userID,
		OrderID:  orderID,
		Discount: discount,
	})
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "redemption references missing row", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to record coupon redemption", err)
	}
	return nil
}
