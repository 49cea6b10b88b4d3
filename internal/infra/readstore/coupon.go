package readstore

import (
	"context"
	"log/slog"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/converter"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db pgquery.DBTX, code string) (pgquery.Coupons, error)
	GetCouponByCodeForUpdate(ctx context.Context, db pgquery.DBTX, code string) (pgquery.Coupons, error)
	GetCouponByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Coupons, error)
	ListCoupons(ctx context.Context, db pgquery.DBTX, arg pgquery.ListCouponsParams) ([]pgquery.Coupons, error)
	CountCoupons(ctx context.Context, db pgquery.DBTX, arg pgquery.ListCouponsParams) (int64, error)
	CountCouponRedemptionsByUser(ctx context.Context, db pgquery.DBTX, couponID, userID uuid.UUID) (int64, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewCouponReadStore(queries CouponReadQueries, db pgquery.DBTX, logger *slog.Logger) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, coupon.NormalizeCode(code))
	return r.toCoupon(row, err, "failed to find coupon by code")
}

// FindByCodeForUpdate holds a row lock until the store's transaction ends.
func (r *CouponReadStore) FindByCodeForUpdate(ctx context.Context, code string) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCodeForUpdate(ctx, r.db, coupon.NormalizeCode(code))
	return r.toCoupon(row, err, "failed to lock coupon by code")
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	return r.toCoupon(row, err, "failed to find coupon by ID")
}

func (r *CouponReadStore) toCoupon(row pgquery.Coupons, err error, msg string) (*coupon.Coupon, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "coupon not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	return converter.CouponFromRow(row), nil
}

// List returns one page of coupons matching f and the total match count.
func (r *CouponReadStore) List(ctx context.Context, f coupon.Filter) ([]*coupon.Coupon, int64, error) {
	params := listParamsFromFilter(f)

	rows, err := r.queries.ListCoupons(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list coupons", err)
	}
	total, err := r.queries.CountCoupons(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count coupons", err)
	}

	items := make([]*coupon.Coupon, len(rows))
	for i, row := range rows {
		items[i] = converter.CouponFromRow(row)
	}
	return items, total, nil
}

func (r *CouponReadStore) CountRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int, error) {
	n, err := r.queries.CountCouponRedemptionsByUser(ctx, r.db, couponID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count coupon redemptions", err)
	}
	return int(n), nil
}

func listParamsFromFilter(f coupon.Filter) pgquery.ListCouponsParams {
	params := pgquery.ListCouponsParams{
		IsActive:   pgconv.BoolPtrToPgtype(f.Active()),
		CodePrefix: pgconv.StringPtrToPgtype(f.CodePrefix()),
		UsableAt:   pgconv.TimePtrToPgtype(f.UsableAt()),
		Limit:      int32(f.Limit()),  // #nosec G115 -- bounded by coupon.MaxFilterLimit
		Offset:     int32(f.Offset()), // #nosec G115 -- validated non-negative
	}
	if t := f.Type(); t != nil {
		params.DiscountType = pgtype.Text{String: t.String(), Valid: true}
	}
	return params
}
