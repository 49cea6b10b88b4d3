package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const couponColumns = `id, code, discount_type, discount_value, min_order_amount, max_discount,
	usage_limit, usage_count, per_user_limit, starts_at, expires_at, is_active, description,
	created_at, updated_at`

func scanCoupon(row interface{ Scan(...any) error }) (Coupons, error) {
	var c Coupons
	err := row.Scan(
		&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MinOrderAmount, &c.MaxDiscount,
		&c.UsageLimit, &c.UsageCount, &c.PerUserLimit, &c.StartsAt, &c.ExpiresAt, &c.IsActive, &c.Description,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

const getCouponByCode = `SELECT ` + couponColumns + ` FROM coupons WHERE code = upper($1)`

func (q *Queries) GetCouponByCode(ctx context.Context, db DBTX, code string) (Coupons, error) {
	return scanCoupon(db.QueryRow(ctx, getCouponByCode, code))
}

const getCouponByCodeForUpdate = getCouponByCode + ` FOR UPDATE`

// GetCouponByCodeForUpdate locks the row until the surrounding tx ends.
func (q *Queries) GetCouponByCodeForUpdate(ctx context.Context, db DBTX, code string) (Coupons, error) {
	return scanCoupon(db.QueryRow(ctx, getCouponByCodeForUpdate, code))
}

const getCouponByID = `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

func (q *Queries) GetCouponByID(ctx context.Context, db DBTX, id uuid.UUID) (Coupons, error) {
	return scanCoupon(db.QueryRow(ctx, getCouponByID, id))
}

type UpsertCouponParams struct {
	ID             uuid.UUID
	Code           string
	DiscountType   string
	DiscountValue  decimal.Decimal
	MinOrderAmount decimal.NullDecimal
	MaxDiscount    decimal.NullDecimal
	UsageLimit     pgtype.Int4
	PerUserLimit   pgtype.Int4
	StartsAt       pgtype.Timestamptz
	ExpiresAt      pgtype.Timestamptz
	IsActive       bool
	Description    pgtype.Text
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

func (p UpsertCouponParams) args() []any {
	return []any{
		p.ID, p.Code, p.DiscountType, p.DiscountValue, p.MinOrderAmount, p.MaxDiscount,
		p.UsageLimit, p.PerUserLimit, p.StartsAt, p.ExpiresAt, p.IsActive, p.Description,
		p.CreatedAt, p.UpdatedAt,
	}
}

const createCoupon = `
INSERT INTO coupons (id, code, discount_type, discount_value, min_order_amount, max_discount,
	usage_limit, per_user_limit, starts_at, expires_at, is_active, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + couponColumns

func (q *Queries) CreateCoupon(ctx context.Context, db DBTX, arg UpsertCouponParams) (Coupons, error) {
	return scanCoupon(db.QueryRow(ctx, createCoupon, arg.args()...))
}

const updateCoupon = `
UPDATE coupons SET
	code = $2, discount_type = $3, discount_value = $4, min_order_amount = $5, max_discount = $6,
	usage_limit = $7, per_user_limit = $8, starts_at = $9, expires_at = $10, is_active = $11,
	description = $12, updated_at = $13
WHERE id = $1
RETURNING ` + couponColumns

// UpdateCoupon never touches usage_count or created_at.
func (q *Queries) UpdateCoupon(ctx context.Context, db DBTX, arg UpsertCouponParams) (Coupons, error) {
	args := arg.args()
	args = append(args[:12], arg.UpdatedAt)
	return scanCoupon(db.QueryRow(ctx, updateCoupon, args...))
}

const incrementCouponUsage = `
UPDATE coupons SET usage_count = usage_count + 1, updated_at = now()
WHERE id = $1 AND (usage_limit IS NULL OR usage_count < usage_limit)`

// IncrementCouponUsage returns zero rows affected once the limit is hit.
func (q *Queries) IncrementCouponUsage(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, incrementCouponUsage, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListCouponsParams struct {
	IsActive     pgtype.Bool
	DiscountType pgtype.Text
	CodePrefix   pgtype.Text
	UsableAt     pgtype.Timestamptz
	Limit        int32
	Offset       int32
}

const couponFilter = `
WHERE ($1::boolean IS NULL OR is_active = $1)
  AND ($2::text IS NULL OR discount_type = $2)
  AND ($3::text IS NULL OR starts_with(code, $3))
  AND ($4::timestamptz IS NULL OR (
        is_active
    AND (starts_at IS NULL OR starts_at <= $4)
    AND (expires_at IS NULL OR expires_at >= $4)
    AND (usage_limit IS NULL OR usage_count < usage_limit)))`

const listCoupons = `SELECT ` + couponColumns + ` FROM coupons` + couponFilter + `
ORDER BY created_at DESC, id DESC
LIMIT $5 OFFSET $6`

func (q *Queries) ListCoupons(ctx context.Context, db DBTX, arg ListCouponsParams) ([]Coupons, error) {
	rows, err := db.Query(ctx, listCoupons, arg.IsActive, arg.DiscountType, arg.CodePrefix, arg.UsableAt, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Coupons, error) {
		return scanCoupon(r)
	})
}

const countCoupons = `SELECT count(*) FROM coupons` + couponFilter

func (q *Queries) CountCoupons(ctx context.Context, db DBTX, arg ListCouponsParams) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countCoupons, arg.IsActive, arg.DiscountType, arg.CodePrefix, arg.UsableAt).Scan(&n)
	return n, err
}

const countCouponRedemptionsByUser = `SELECT count(*) FROM coupon_redemptions WHERE coupon_id = $1 AND user_id = $2`

func (q *Queries) CountCouponRedemptionsByUser(ctx context.Context, db DBTX, couponID, userID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countCouponRedemptionsByUser, couponID, userID).Scan(&n)
	return n, err
}

type CreateCouponRedemptionParams struct {
	CouponID uuid.UUID
	UserID   uuid.UUID
	OrderID  uuid.UUID
	Discount decimal.Decimal
}

const createCouponRedemption = `
INSERT INTO coupon_redemptions (coupon_id, user_id, order_id, discount)
VALUES ($1, $2, $3, $4)`

func (q *Queries) CreateCouponRedemption(ctx context.Context, db DBTX, arg CreateCouponRedemptionParams) error {
	_, err := db.Exec(ctx, createCouponRedemption, arg.CouponID, arg.UserID, arg.OrderID, arg.Discount)
	return err
}
