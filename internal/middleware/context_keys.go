package middleware

import (
	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/defterpro/defter_backend/internal/i18n"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
	langKey     = contextKey("lang")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the request context.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	role, ok := c.Request.Context().Value(userRoleKey).(domain.UserRole)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

// GetLangFromContext retrieves the request display language, defaulting when unset.
func GetLangFromContext(c *gin.Context) i18n.Lang {
	lang, ok := c.Request.Context().Value(langKey).(i18n.Lang)
	if !ok {
		return i18n.DefaultLang
	}
	return lang
}
