package middleware

import (
	"leather-sandals-store/internal/pkg/config"
	"leather-sandals-store/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const ctxLanguageKey = "lang"

// Locale resolves the response language from ?lang= then Accept-Language.
func Locale(cfg config.LocaleConfig) gin.HandlerFunc {
	fallback, ok := i18n.ParseTag(cfg.Default)
	if !ok {
		fallback = language.Turkish
	}
	return func(c *gin.Context) {
		tag := i18n.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"), fallback)
		c.Set(ctxLanguageKey, tag)
		c.Header("Content-Language", tag.String())
		c.Next()
	}
}

// GetLanguage falls back to Turkish when Locale did not run.
func GetLanguage(c *gin.Context) language.Tag {
	if v, ok := c.Get(ctxLanguageKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return language.Turkish
}
