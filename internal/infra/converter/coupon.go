package converter

import (
	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"
)

func CouponFromRow(row pgquery.Coupons) *coupon.Coupon {
	attrs := coupon.Attributes{
		Code:           row.Code,
		DiscountType:   coupon.DiscountType(row.DiscountType),
		DiscountValue:  row.DiscountValue,
		MinOrderAmount: pgconv.DecimalPtrFromNull(row.MinOrderAmount),
		MaxDiscount:    pgconv.DecimalPtrFromNull(row.MaxDiscount),
		UsageLimit:     pgconv.IntPtrFromPgtype(row.UsageLimit),
		PerUserLimit:   pgconv.IntPtrFromPgtype(row.PerUserLimit),
		StartsAt:       pgconv.TimePtrFromPgtype(row.StartsAt),
		ExpiresAt:      pgconv.TimePtrFromPgtype(row.ExpiresAt),
		IsActive:       row.IsActive,
		Description:    pgconv.StringPtrFromPgtype(row.Description),
	}
	return coupon.ReconstructCoupon(
		row.ID,
		attrs,
		int(row.UsageCount),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func CouponToUpsertParams(c *coupon.Coupon) pgquery.UpsertCouponParams {
	return pgquery.UpsertCouponParams{
		ID:             c.ID(),
		Code:           c.Code().String(),
		DiscountType:   c.DiscountType().String(),
		DiscountValue:  c.DiscountValue(),
		MinOrderAmount: pgconv.DecimalPtrToNull(c.MinOrderAmount()),
		MaxDiscount:    pgconv.DecimalPtrToNull(c.MaxDiscount()),
		UsageLimit:     pgconv.IntPtrToPgtype(c.UsageLimit()),
		PerUserLimit:   pgconv.IntPtrToPgtype(c.PerUserLimit()),
		StartsAt:       pgconv.TimePtrToPgtype(c.StartsAt()),
		ExpiresAt:      pgconv.TimePtrToPgtype(c.ExpiresAt()),
		IsActive:       c.IsActive(),
		Description:    pgconv.StringPtrToPgtype(c.Description()),
		CreatedAt:      pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}
