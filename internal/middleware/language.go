package middleware

import (
	"context"
	"strings"

	"github.com/defterpro/defter_backend/internal/i18n"
	"github.com/gin-gonic/gin"
)

// LanguageMiddleware resolves the display language for the request from the
// `lang` query parameter or the Accept-Language header. Language only
// affects user-facing messages, never business logic.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := c.Query("lang")
		if tag == "" {
			// Take only the primary subtag of the first listed language.
			header := c.GetHeader("Accept-Language")
			if header != "" {
				first := strings.SplitN(header, ",", 2)[0]
				tag = strings.SplitN(strings.TrimSpace(first), "-", 2)[0]
			}
		}

		lang := i18n.ParseLang(tag)
		ctx := context.WithValue(c.Request.Context(), langKey, lang)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
