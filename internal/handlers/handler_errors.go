package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/i18n"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// forbiddenMessageKey picks the translation key for a 403: the self-guard
// rejections each carry their own warning, everything else is generic.
func forbiddenMessageKey(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrSelfDelete):
		return "cannot_delete_self"
	case errors.Is(err, apperrors.ErrSelfDeactivate):
		return "cannot_disable_self"
	case errors.Is(err, apperrors.ErrSelfRoleChange):
		return "cannot_change_own_role"
	default:
		return "forbidden"
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP statuses. Unrecognized errors
// become 500s with a generic body so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, apperrors.ErrForbidden):
		lang := middleware.GetLangFromContext(c)
		c.JSON(http.StatusForbidden, ErrorResponse{Error: i18n.T(lang, forbiddenMessageKey(err))})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &appErr):
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled error in handler", slog.String("error", err.Error()), slog.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
