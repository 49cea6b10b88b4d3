package order

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	MaxQuantity = 20
)

var (
	ErrNoItems         = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 20")
	ErrInvalidPrice    = errors.New("unit price must be positive")
	ErrDuplicateItem   = errors.New("product listed more than once")
	ErrNoShipping      = errors.New("shipping address is required")
	ErrInvalidStatus   = errors.New("invalid order status")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return st, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}

// Item is one priced line. Name and price are copied from the catalog at
// placement time.
type Item struct {
	productID   uuid.UUID
	productName string
	unitPrice   decimal.Decimal
	quantity    int
}

func NewItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int) (Item, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return Item{}, ErrInvalidQuantity
	}
	if unitPrice.Sign() <= 0 {
		return Item{}, ErrInvalidPrice
	}
	return Item{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

func (i Item) ProductID() uuid.UUID       { return i.productID }
func (i Item) ProductName() string        { return i.productName }
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i Item) Quantity() int              { return i.quantity }

func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Subtotal sums line totals.
func Subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
