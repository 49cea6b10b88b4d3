//go:build unit

package i18n

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		in   string
		want string
	}{
		{name: "turkish thousands", tag: language.Turkish, in: "1500", want: "1.500,00"},
		{name: "english thousands", tag: language.English, in: "1500", want: "1,500.00"},
		{name: "rounds half away", tag: language.Turkish, in: "124.995", want: "125,00"},
		{name: "column ceiling stays exact", tag: language.English, in: "9999999999.99", want: "9,999,999,999.99"},
		{name: "single kurus", tag: language.English, in: "0.01", want: "0.01"},
		{name: "negative fraction", tag: language.English, in: "-0.5", want: "-0.50"},
		{name: "negative whole", tag: language.Turkish, in: "-1250.4", want: "-1.250,40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(Printer(tt.tag), decimal.RequireFromString(tt.in)))
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, language.English, Resolve("en", "tr-TR", language.Turkish))
	assert.Equal(t, language.English, Resolve("", "en-US,en;q=0.9", language.Turkish))
	assert.Equal(t, language.Turkish, Resolve("", "", language.Turkish))
}
