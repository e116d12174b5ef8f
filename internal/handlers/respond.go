package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_monedas/internal/apperrors"
	"github.com/SscSPs/pos_monedas/internal/core/domain"
	"github.com/SscSPs/pos_monedas/internal/envelope"
	"github.com/SscSPs/pos_monedas/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Error codes for failures raised while serving a route.
const (
	ErrCodeValidation = "E001"
	ErrCodeNotFound   = "E002"
	ErrCodeConflict   = "E003"
)

const internalErrorDetail = "Internal server error"

// respondError is the single place where errors become HTTP responses.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)
	messageUUID, requestAppID := middleware.GetCorrelationFromContext(c)

	status, code, detail := http.StatusInternalServerError, middleware.ErrCodeInternal, internalErrorDetail
	if appErr, ok := apperrors.As(err); ok {
		switch appErr.Kind {
		case apperrors.KindValidation:
			status, code, detail = http.StatusBadRequest, ErrCodeValidation, appErr.Message
		case apperrors.KindNotFound:
			status, code, detail = http.StatusNotFound, ErrCodeNotFound, appErr.Message
		case apperrors.KindConflict:
			status, code, detail = http.StatusConflict, ErrCodeConflict, appErr.Message
		}
	}

	if status == http.StatusInternalServerError {
		logger.Error("Unhandled error serving request", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request failed", slog.Int("status", status), slog.String("detail", detail))
	}

	middleware.AbortWithError(c, status, messageUUID, requestAppID, envelope.BuildErrorItem(code, detail))
}

func respondSuccess[T any](c *gin.Context, status int, data T, opts ...envelope.Option) {
	messageUUID, requestAppID := middleware.GetCorrelationFromContext(c)
	c.JSON(status, envelope.BuildSuccessResponse(status, data, messageUUID, requestAppID, opts...))
}

func respondPaginated[T any](c *gin.Context, status int, data T, pagination domain.Pagination) {
	messageUUID, requestAppID := middleware.GetCorrelationFromContext(c)
	c.JSON(status, envelope.BuildPaginatedResponse(status, data, pagination, messageUUID, requestAppID))
}

// routeNotFound answers any unmatched method/path combination.
func routeNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
		"error":  "Endpoint not found",
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
}
