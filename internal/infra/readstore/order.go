package readstore

import (
	"context"
	"log/slog"
	"time"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/converter"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"
	"leather-sandals-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Orders, error)
	GetOrderItems(ctx context.Context, db pgquery.DBTX, orderID uuid.UUID) ([]pgquery.OrderItems, error)
	GetOrdersByUserFirstPage(ctx context.Context, db pgquery.DBTX, userID uuid.UUID, limit int32) ([]pgquery.Orders, error)
	GetOrdersByUserKeyset(ctx context.Context, db pgquery.DBTX, arg pgquery.GetOrdersByUserKeysetParams) ([]pgquery.Orders, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewOrderReadStore(queries OrderReadQueries, db pgquery.DBTX, logger *slog.Logger) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := s.queries.GetOrderByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find order by ID", err)
	}

	items, err := s.queries.GetOrderItems(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load order items", err)
	}

	shipping, err := converter.ShippingFromJSON(row.Shipping)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to decode order shipping", err)
	}

	view := &queries.OrderView{
		ID:            row.ID,
		UserID:        row.UserID,
		Status:        row.Status,
		PaymentMethod: row.PaymentMethod,
		CouponCode:    pgconv.StringPtrFromPgtype(row.CouponCode),
		Subtotal:      row.Subtotal,
		Discount:      row.Discount,
		Total:         row.Total,
		Shipping: queries.ShippingView{
			Title:      shipping.Title,
			FirstName:  shipping.FirstName,
			LastName:   shipping.LastName,
			Phone:      shipping.Phone,
			Address:    shipping.Address,
			City:       shipping.City,
			District:   shipping.District,
			PostalCode: shipping.PostalCode,
		},
		Items:     make([]queries.OrderItemView, len(items)),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
	for i, it := range items {
		view.Items[i] = queries.OrderItemView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    int(it.Quantity),
			LineTotal:   it.UnitPrice.Mul(decimal.NewFromInt32(it.Quantity)),
		}
	}
	return view, nil
}

func (s *OrderReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := s.queries.GetOrdersByUserFirstPage(ctx, s.db, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list orders", err)
	}
	return toOrderListItems(rows), nil
}

func (s *OrderReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := s.queries.GetOrdersByUserKeyset(ctx, s.db, pgquery.GetOrdersByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list orders", err)
	}
	return toOrderListItems(rows), nil
}

func toOrderListItems(rows []pgquery.Orders) []*queries.OrderListItem {
	items := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.OrderListItem{
			ID:         row.ID,
			Status:     row.Status,
			CouponCode: pgconv.StringPtrFromPgtype(row.CouponCode),
			Subtotal:   row.Subtotal,
			Discount:   row.Discount,
			Total:      row.Total,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items
}
