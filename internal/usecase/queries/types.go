package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView represents read-optimized product data
type ProductView struct {
	ID       uuid.UUID       `json:"id"`
	Slug     string          `json:"slug"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	IsActive bool            `json:"is_active"`
}

// CouponView is the admin projection of a coupon row
type CouponView struct {
	ID             uuid.UUID        `json:"id"`
	Code           string           `json:"code"`
	DiscountType   string           `json:"discount_type"`
	DiscountValue  decimal.Decimal  `json:"discount_value"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount,omitempty"`
	MaxDiscount    *decimal.Decimal `json:"max_discount,omitempty"`
	UsageLimit     *int             `json:"usage_limit,omitempty"`
	UsageCount     int              `json:"usage_count"`
	PerUserLimit   *int             `json:"per_user_limit,omitempty"`
	StartsAt       *time.Time       `json:"starts_at,omitempty"`
	ExpiresAt      *time.Time       `json:"expires_at,omitempty"`
	IsActive       bool             `json:"is_active"`
	Description    *string          `json:"description,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// CouponPage is one offset page of the admin listing
type CouponPage struct {
	Items  []*CouponView
	Total  int64
	Limit  int
	Offset int
}

// ShippingView mirrors the address stored with an order
type ShippingView struct {
	Title      string
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	City       string
	District   string
	PostalCode string
}

type OrderItemView struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	LineTotal   decimal.Decimal
}

// OrderView represents a full order with lines
type OrderView struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        string
	PaymentMethod string
	CouponCode    *string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Shipping      ShippingView
	Items         []OrderItemView
	CreatedAt     time.Time
}

type OrderListItem struct {
	ID         uuid.UUID
	Status     string
	CouponCode *string
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
