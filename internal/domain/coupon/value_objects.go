package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("invalid discount type")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidMinOrderAmount  = errors.New("minimum order amount cannot be negative")
	ErrInvalidMaxDiscount     = errors.New("max discount cannot be negative")
	ErrInvalidUsageLimit      = errors.New("usage limits cannot be negative")
	ErrInvalidActiveWindow    = errors.New("expiry must be after start")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// Code is stored upper-cased; lookups are case-insensitive because every
// input passes through NormalizeCode first.
type Code string

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewCouponCode(code string) (Code, error) {
	code = NormalizeCode(code)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

func NewDiscountType(s string) (DiscountType, error) {
	t := DiscountType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidDiscountType
	}
	return t, nil
}

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixedAmount:
		return true
	default:
		return false
	}
}

func (t DiscountType) String() string {
	return string(t)
}

// Wire returns the client-facing name: "percentage" or "fixed".
func (t DiscountType) Wire() string {
	if t == DiscountPercentage {
		return "percentage"
	}
	return "fixed"
}
