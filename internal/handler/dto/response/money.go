package response

import (
	"encoding/json"

	"leather-sandals-store/internal/pkg/money"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Amount renders d as a JSON number with two fraction digits.
func Amount(d decimal.Decimal) json.Number {
	return json.Number(money.Fixed(d))
}

func OptionalAmount(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := Amount(*d)
	return &n
}

var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: json.Number(""),
			Fn: func(src any) (any, error) {
				return Amount(src.(decimal.Decimal)), nil
			},
		},
		{
			SrcType: (*decimal.Decimal)(nil),
			DstType: (*json.Number)(nil),
			Fn: func(src any) (any, error) {
				return OptionalAmount(src.(*decimal.Decimal)), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}
