package repository

import (
	"context"
	"log/slog"

	"leather-sandals-store/internal/domain/order"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/converter"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db pgquery.DBTX, arg pgquery.OrderItems) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewOrderRepository(queries OrderWriteQueries, db pgquery.DBTX, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// Create writes the order header and its lines; call it inside a transaction.
func (r *OrderRepository) Create(ctx context.Context, tx pgquery.DBTX, o *order.Order) error {
	params, err := converter.OrderToCreateParams(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode order", err)
	}

	if err := r.queries.CreateOrder(ctx, tx, params); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "order references missing row", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create order", err)
	}

	for _, item := range converter.OrderItemsToRows(o) {
		if err := r.queries.CreateOrderItem(ctx, tx, item); err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "order item references missing product", err)
			}
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create order item", err)
		}
	}
	return nil
}
