package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, user_id, coupon_id, coupon_code, subtotal, discount, total, payment_method, status, shipping, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (Orders, error) {
	var o Orders
	err := row.Scan(&o.ID, &o.UserID, &o.CouponID, &o.CouponCode, &o.Subtotal, &o.Discount, &o.Total,
		&o.PaymentMethod, &o.Status, &o.Shipping, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func collectOrders(rows pgx.Rows) ([]Orders, error) {
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Orders, error) {
		return scanOrder(r)
	})
}

type CreateOrderParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CouponID      pgtype.UUID
	CouponCode    pgtype.Text
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Status        string
	Shipping      []byte
	CreatedAt     pgtype.Timestamptz
}

const createOrder = `
INSERT INTO orders (id, user_id, coupon_id, coupon_code, subtotal, discount, total, payment_method, status, shipping, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	_, err := db.Exec(ctx, createOrder, arg.ID, arg.UserID, arg.CouponID, arg.CouponCode, arg.Subtotal, arg.Discount,
		arg.Total, arg.PaymentMethod, arg.Status, arg.Shipping, arg.CreatedAt)
	return err
}

const createOrderItem = `
INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateOrderItem(ctx context.Context, db DBTX, arg OrderItems) error {
	_, err := db.Exec(ctx, createOrderItem, arg.OrderID, arg.ProductID, arg.ProductName, arg.UnitPrice, arg.Quantity)
	return err
}

const getOrderByID = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderByID, id))
}

const getOrderItems = `
SELECT order_id, product_id, product_name, unit_price, quantity
FROM order_items WHERE order_id = $1 ORDER BY product_name, product_id`

func (q *Queries) GetOrderItems(ctx context.Context, db DBTX, orderID uuid.UUID) ([]OrderItems, error) {
	rows, err := db.Query(ctx, getOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (OrderItems, error) {
		var it OrderItems
		err := r.Scan(&it.OrderID, &it.ProductID, &it.ProductName, &it.UnitPrice, &it.Quantity)
		return it, err
	})
}

const getOrdersByUserFirstPage = `SELECT ` + orderColumns + ` FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

func (q *Queries) GetOrdersByUserFirstPage(ctx context.Context, db DBTX, userID uuid.UUID, limit int32) ([]Orders, error) {
	rows, err := db.Query(ctx, getOrdersByUserFirstPage, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

type GetOrdersByUserKeysetParams struct {
	UserID    uuid.UUID
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

const getOrdersByUserKeyset = `SELECT ` + orderColumns + ` FROM orders
WHERE user_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

func (q *Queries) GetOrdersByUserKeyset(ctx context.Context, db DBTX, arg GetOrdersByUserKeysetParams) ([]Orders, error) {
	rows, err := db.Query(ctx, getOrdersByUserKeyset, arg.UserID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}
