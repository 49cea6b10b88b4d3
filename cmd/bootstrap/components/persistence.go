package components

import (
	"log/slog"

	"leather-sandals-store/internal/handler"
	"leather-sandals-store/internal/infra/cache"
	"leather-sandals-store/internal/infra/checkoutstore"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/infra/ratelimit"
	"leather-sandals-store/internal/infra/readstore"
	"leather-sandals-store/internal/infra/uow"
	"leather-sandals-store/internal/pkg/config"
	"leather-sandals-store/internal/usecase/commands"
	"leather-sandals-store/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	redisStoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Coupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var redisStoreModule = fx.Module("persistence/redis",
	fx.Provide(
		fx.Annotate(
			NewCheckoutStore,
			fx.As(new(commands.CheckoutStore)),
		),
		ratelimit.NewRedisCounter,
		NewRateLimiters,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}

func NewCheckoutStore(c cache.Cache, cfg config.Config, logger *slog.Logger) *checkoutstore.RedisStore {
	return checkoutstore.NewRedisStore(c, cfg.Checkout, logger)
}

func NewRateLimiters(counter *ratelimit.RedisCounter, cfg config.Config, logger *slog.Logger) handler.RateLimiters {
	return handler.RateLimiters{
		Login:          ratelimit.NewLimiter(counter, cfg.RateLimit.LoginPerWindow, cfg.RateLimit.Window, logger),
		CouponValidate: ratelimit.NewLimiter(counter, cfg.RateLimit.CouponValidatePerWindow, cfg.RateLimit.Window, logger),
	}
}
