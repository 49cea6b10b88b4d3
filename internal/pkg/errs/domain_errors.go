package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Coupon errors
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponRejected      = errors.New("coupon rejected")
	ErrCouponCodeTaken     = errors.New("coupon code already exists")
	ErrPerUserLimitReached = errors.New("per-user coupon limit reached")

	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")

	// Order errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrCheckoutIncomplete = errors.New("checkout is incomplete")
	ErrEmptyOrder         = errors.New("order has no items")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyConflict    = errors.New("idempotency key reused with different payload")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
