package response

import (
	"encoding/json"
	"time"

	"leather-sandals-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShippingResponse struct {
	Title      string `json:"title"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode,omitempty"`
}

type OrderItemResponse struct {
	ProductID   uuid.UUID   `json:"productId"`
	ProductName string      `json:"productName"`
	UnitPrice   json.Number `json:"unitPrice"`
	Quantity    int         `json:"quantity"`
	LineTotal   json.Number `json:"lineTotal"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	CouponCode    *string             `json:"couponCode,omitempty"`
	Subtotal      json.Number         `json:"subtotal"`
	Discount      json.Number         `json:"discount"`
	Total         json.Number         `json:"total"`
	Shipping      ShippingResponse    `json:"shipping"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type OrderListItemResponse struct {
	ID         uuid.UUID   `json:"id"`
	Status     string      `json:"status"`
	CouponCode *string     `json:"couponCode,omitempty"`
	Subtotal   json.Number `json:"subtotal"`
	Discount   json.Number `json:"discount"`
	Total      json.Number `json:"total"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type OrderListResponse struct {
	Items      []*OrderListItemResponse `json:"items"`
	NextCursor *string                  `json:"nextCursor,omitempty"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var res OrderResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromOrderList(items []*queries.OrderListItem, next *queries.Cursor) (*OrderListResponse, error) {
	res := &OrderListResponse{Items: make([]*OrderListItemResponse, 0, len(items))}
	if err := copyInto(&res.Items, items); err != nil {
		return nil, err
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res, nil
}
