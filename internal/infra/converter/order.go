package converter

import (
	"encoding/json"

	"leather-sandals-store/internal/domain/checkout"
	"leather-sandals-store/internal/domain/order"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// ShippingJSON is the layout of orders.shipping.
type ShippingJSON struct {
	Title      string `json:"title"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode,omitempty"`
	IsDefault  bool   `json:"isDefault,omitempty"`
}

func ShippingToJSON(a checkout.Address) ([]byte, error) {
	return json.Marshal(ShippingJSON(a))
}

func ShippingFromJSON(raw []byte) (checkout.Address, error) {
	var s ShippingJSON
	if len(raw) == 0 {
		return checkout.Address{}, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return checkout.Address{}, err
	}
	return checkout.Address(s), nil
}

func OrderToCreateParams(o *order.Order) (pgquery.CreateOrderParams, error) {
	shipping, err := ShippingToJSON(o.Shipping())
	if err != nil {
		return pgquery.CreateOrderParams{}, err
	}

	params := pgquery.CreateOrderParams{
		ID:            o.ID(),
		UserID:        o.UserID(),
		CouponID:      pgconv.UUIDPtrToPgtype(o.CouponID()),
		Subtotal:      o.Subtotal(),
		Discount:      o.Discount(),
		Total:         o.Total(),
		PaymentMethod: o.PaymentMethod().String(),
		Status:        o.Status().String(),
		Shipping:      shipping,
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt()),
	}
	if code := o.CouponCode(); code != nil {
		params.CouponCode = pgtype.Text{String: code.String(), Valid: true}
	}
	return params, nil
}

func OrderItemsToRows(o *order.Order) []pgquery.OrderItems {
	items := o.Items()
	rows := make([]pgquery.OrderItems, len(items))
	for i, it := range items {
		rows[i] = pgquery.OrderItems{
			OrderID:     o.ID(),
			ProductID:   it.ProductID(),
			ProductName: it.ProductName(),
			UnitPrice:   it.UnitPrice(),
			Quantity:    int32(it.Quantity()), // #nosec G115 -- bounded by order.MaxQuantity
		}
	}
	return rows
}
