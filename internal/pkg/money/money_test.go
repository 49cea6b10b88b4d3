//go:build unit

package money

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "0", want: true},
		{in: "1249.90", want: true},
		{in: "1249.9000000000001", want: true},
		{in: "-250", want: true},
		{in: "9999999999.99", want: true},
		{in: "9999999999.994", want: true},
		{in: "9999999999.995", want: false},
		{in: "10000000000", want: false},
		{in: "1e11", want: false},
		{in: "1e20000000", want: false},
		{in: "1e-20000000", want: false},
		{in: "0.000000000000000000001", want: false},
		{in: "123456789012345678901234567890123456789e-30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestInRangeRefusesHugeExponentQuickly(t *testing.T) {
	d := decimal.RequireFromString("1e20000000")

	start := time.Now()
	assert.False(t, InRange(d))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
