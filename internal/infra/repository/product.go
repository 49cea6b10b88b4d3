package repository

import (
	"context"
	"log/slog"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	DecrementProductStock(ctx context.Context, db pgquery.DBTX, id uuid.UUID, quantity int32) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewProductRepository(queries ProductWriteQueries, db pgquery.DBTX, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// ReserveStock fails with KindConflict when the product cannot cover quantity.
func (r *ProductRepository) ReserveStock(ctx context.Context, tx pgquery.DBTX, productID uuid.UUID, quantity int) error {
	n, err := r.queries.DecrementProductStock(ctx, tx, productID, int32(quantity)) // #nosec G115 -- quantity bounded by order.MaxQuantity
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to reserve stock", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "insufficient stock", nil)
	}
	return nil
}
