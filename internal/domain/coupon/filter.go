package coupon

import (
	"errors"
	"time"
)

const (
	DefaultFilterLimit = 20
	MaxFilterLimit     = 100
)

var (
	ErrInvalidFilterLimit  = errors.New("limit must be between 1 and 100")
	ErrInvalidFilterOffset = errors.New("offset cannot be negative")
)

// Filter narrows the admin coupon listing. Nil fields are not applied.
type Filter struct {
	active     *bool
	typ        *DiscountType
	codePrefix *string
	usableAt   *time.Time
	limit      int
	offset     int
}

type FilterParams struct {
	Active     *bool
	Type       *string
	CodePrefix *string
	UsableAt   *time.Time
	Limit      int
	Offset     int
}

func NewFilter(p FilterParams) (Filter, error) {
	f := Filter{
		active:   p.Active,
		usableAt: p.UsableAt,
		limit:    p.Limit,
		offset:   p.Offset,
	}
	if f.limit == 0 {
		f.limit = DefaultFilterLimit
	}
	if f.limit < 1 || f.limit > MaxFilterLimit {
		return Filter{}, ErrInvalidFilterLimit
	}
	if f.offset < 0 {
		return Filter{}, ErrInvalidFilterOffset
	}
	if p.Type != nil {
		t, err := NewDiscountType(*p.Type)
		if err != nil {
			return Filter{}, err
		}
		f.typ = &t
	}
	if p.CodePrefix != nil {
		if prefix := NormalizeCode(*p.CodePrefix); prefix != "" {
			f.codePrefix = &prefix
		}
	}
	return f, nil
}

func (f Filter) Active() *bool        { return f.active }
func (f Filter) Type() *DiscountType  { return f.typ }
func (f Filter) CodePrefix() *string  { return f.codePrefix }
func (f Filter) UsableAt() *time.Time { return f.usableAt }
func (f Filter) Limit() int           { return f.limit }
func (f Filter) Offset() int          { return f.offset }
