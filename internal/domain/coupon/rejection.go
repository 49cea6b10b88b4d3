package coupon

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Reason string

const (
	ReasonNotFound          Reason = "NOT_FOUND"
	ReasonInactive          Reason = "INACTIVE"
	ReasonNotYetStarted     Reason = "NOT_YET_STARTED"
	ReasonExpired           Reason = "EXPIRED"
	ReasonUsageLimitReached Reason = "USAGE_LIMIT_REACHED"
	ReasonBelowMinimum      Reason = "BELOW_MINIMUM"
)

func (r Reason) String() string {
	return string(r)
}

// Sentinels for errors.Is against a *RejectionError.
var (
	ErrNotFound          = errors.New("coupon not found")
	ErrInactive          = errors.New("coupon inactive")
	ErrNotYetStarted     = errors.New("coupon not yet started")
	ErrExpired           = errors.New("coupon expired")
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
	ErrBelowMinimum      = errors.New("subtotal below coupon minimum")
)

var reasonSentinels = map[Reason]error{
	ReasonNotFound:          ErrNotFound,
	ReasonInactive:          ErrInactive,
	ReasonNotYetStarted:     ErrNotYetStarted,
	ReasonExpired:           ErrExpired,
	ReasonUsageLimitReached: ErrUsageLimitReached,
	ReasonBelowMinimum:      ErrBelowMinimum,
}

// RejectionError is returned by Evaluate when a coupon cannot be applied.
// MinOrderAmount is only set for ReasonBelowMinimum.
type RejectionError struct {
	Reason         Reason
	MinOrderAmount *decimal.Decimal
}

func Reject(reason Reason) *RejectionError {
	return &RejectionError{Reason: reason}
}

func (e *RejectionError) Error() string {
	if e.Reason == ReasonBelowMinimum && e.MinOrderAmount != nil {
		return fmt.Sprintf("coupon rejected: %s (minimum %s)", e.Reason, e.MinOrderAmount.StringFixed(2))
	}
	return fmt.Sprintf("coupon rejected: %s", e.Reason)
}

func (e *RejectionError) Is(target error) bool {
	return reasonSentinels[e.Reason] == target
}

// AsRejection unwraps err into a *RejectionError when it carries one.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
