package readstore

import (
	"context"
	"log/slog"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadQueries interface {
	ListActiveProducts(ctx context.Context, db pgquery.DBTX) ([]pgquery.Products, error)
	GetProductsByIDs(ctx context.Context, db pgquery.DBTX, ids []uuid.UUID) ([]pgquery.Products, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewProductReadStore(queries ProductReadQueries, db pgquery.DBTX, logger *slog.Logger) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (s *ProductReadStore) ListActive(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := s.queries.ListActiveProducts(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list products", err)
	}
	return toProductViews(rows), nil
}

// FindByIDs silently skips unknown ids; callers compare lengths.
func (s *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.ProductView, error) {
	rows, err := s.queries.GetProductsByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load products", err)
	}
	return toProductViews(rows), nil
}

func toProductViews(rows []pgquery.Products) []*queries.ProductView {
	views := make([]*queries.ProductView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ProductView{
			ID:       row.ID,
			Slug:     row.Slug,
			Name:     row.Name,
			Price:    row.Price,
			Stock:    int(row.Stock),
			IsActive: row.IsActive,
		}
	}
	return views
}
