package shared

import (
	"context"
	"time"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/domain/order"
	"leather-sandals-store/internal/domain/user"
	"leather-sandals-store/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Coupons() CouponRepository
	Products() ProductRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

type CommandReads interface {
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	// CouponByCodeForUpdate locks the coupon row; only meaningful inside Within.
	CouponByCodeForUpdate(ctx context.Context, code string) (*coupon.Coupon, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	CouponRedemptionCount(ctx context.Context, couponID, userID uuid.UUID) (int, error)
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*ProductSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, o *order.Order) error
}

type CouponRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, c *coupon.Coupon) (*coupon.Coupon, error)
	Update(ctx context.Context, tx pgquery.DBTX, c *coupon.Coupon) (*coupon.Coupon, error)
	IncrementUsage(ctx context.Context, tx pgquery.DBTX, couponID uuid.UUID) error
	RecordRedemption(ctx context.Context, tx pgquery.DBTX, couponID, userID, orderID uuid.UUID, discount decimal.Decimal) error
}

type ProductRepository interface {
	ReserveStock(ctx context.Context, tx pgquery.DBTX, productID uuid.UUID, quantity int) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID, resultHash string, orderID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
	Release(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgquery.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx pgquery.DBTX, u *user.User) (uuid.UUID, error)
}
