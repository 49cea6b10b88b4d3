package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, slug, name, price, stock, is_active, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (Products, error) {
	var p Products
	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.Price, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func collectProducts(rows pgx.Rows) ([]Products, error) {
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Products, error) {
		return scanProduct(r)
	})
}

const listActiveProducts = `SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY name, id`

func (q *Queries) ListActiveProducts(ctx context.Context, db DBTX) ([]Products, error) {
	rows, err := db.Query(ctx, listActiveProducts)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

const getProductsByIDs = `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1::uuid[])`

func (q *Queries) GetProductsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Products, error) {
	rows, err := db.Query(ctx, getProductsByIDs, ids)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

const decrementProductStock = `
UPDATE products SET stock = stock - $2, updated_at = now()
WHERE id = $1 AND is_active AND stock >= $2`

// DecrementProductStock returns zero rows affected when stock is short.
func (q *Queries) DecrementProductStock(ctx context.Context, db DBTX, id uuid.UUID, quantity int32) (int64, error) {
	tag, err := db.Exec(ctx, decrementProductStock, id, quantity)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
