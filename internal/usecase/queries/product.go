package queries

import (
	"context"

	"leather-sandals-store/internal/pkg/errs"
)

type ProductQueries interface {
	ListActive(ctx context.Context) ([]*ProductView, error)
}

type ProductReadStore interface {
	ListActive(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	repo ProductReadStore
}

func NewProductQueries(repo ProductReadStore) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) ListActive(ctx context.Context) ([]*ProductView, error) {
	products, err := q.repo.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return products, nil
}
