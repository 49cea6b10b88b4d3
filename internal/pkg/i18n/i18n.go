package i18n

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var supported = []language.Tag{
	language.Turkish, // first entry is the matcher fallback
	language.English,
}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag maps a user-supplied value onto a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// Resolve picks the language for a request. An explicit lang value wins
// over Accept-Language; fallback is used when neither matches.
func Resolve(langParam, acceptLanguage string, fallback language.Tag) language.Tag {
	if tag, ok := ParseTag(langParam); ok {
		return tag
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[idx]
			}
		}
	}
	return fallback
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// FormatAmount formats d with the locale's separators and two fraction digits.
// The whole part goes through the locale printer as an int64 and the kuruş
// are appended as digits, so no float conversion is involved. Callers pass
// NUMERIC(12,2) amounts, well inside int64.
func FormatAmount(p *message.Printer, d decimal.Decimal) string {
	r := d.Round(2)
	whole := r.Truncate(0)
	kurus := r.Sub(whole).Abs().Shift(2).IntPart()

	sign := ""
	if r.IsNegative() && whole.IsZero() {
		sign = "-"
	}
	return sign + p.Sprint(number.Decimal(whole.IntPart())) + decimalSeparator(p) + fmt.Sprintf("%02d", kurus)
}

func decimalSeparator(p *message.Printer) string {
	return strings.Trim(p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1))), "15")
}
