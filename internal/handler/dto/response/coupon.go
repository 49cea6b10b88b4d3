package response

import (
	"encoding/json"
	"time"

	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/usecase/queries"

	"github.com/google/uuid"
)

// CouponValidResponse is the body of an accepted validate call.
type CouponValidResponse struct {
	Valid         bool         `json:"valid"`
	Code          string       `json:"code"`
	DiscountType  string       `json:"discountType"`
	DiscountValue json.Number  `json:"discountValue"`
	MaxDiscount   *json.Number `json:"maxDiscount,omitempty"`
	Discount      json.Number  `json:"discount"`
	Description   *string      `json:"description,omitempty"`
}

// CouponInvalidResponse carries a localized message and, for business
// rejections, the machine readable reason.
type CouponInvalidResponse struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func FromEvaluation(e *coupon.Evaluation) CouponValidResponse {
	return CouponValidResponse{
		Valid:         true,
		Code:          e.Code.String(),
		DiscountType:  e.DiscountType.Wire(),
		DiscountValue: Amount(e.DiscountValue),
		MaxDiscount:   OptionalAmount(e.MaxDiscount),
		Discount:      Amount(e.Discount),
		Description:   e.Description,
	}
}

type CouponResponse struct {
	ID             uuid.UUID    `json:"id"`
	Code           string       `json:"code"`
	DiscountType   string       `json:"discountType"`
	DiscountValue  json.Number  `json:"discountValue"`
	MinOrderAmount *json.Number `json:"minOrderAmount,omitempty"`
	MaxDiscount    *json.Number `json:"maxDiscount,omitempty"`
	UsageLimit     *int         `json:"usageLimit,omitempty"`
	UsageCount     int          `json:"usageCount"`
	PerUserLimit   *int         `json:"perUserLimit,omitempty"`
	StartsAt       *time.Time   `json:"startsAt,omitempty"`
	ExpiresAt      *time.Time   `json:"expiresAt,omitempty"`
	IsActive       bool         `json:"isActive"`
	Description    *string      `json:"description,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

type CouponListResponse struct {
	Items  []*CouponResponse `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

func FromCouponView(v *queries.CouponView) (*CouponResponse, error) {
	var res CouponResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromCouponPage(p *queries.CouponPage) (*CouponListResponse, error) {
	res := &CouponListResponse{
		Items:  make([]*CouponResponse, 0, len(p.Items)),
		Total:  p.Total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	for _, v := range p.Items {
		item, err := FromCouponView(v)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}
