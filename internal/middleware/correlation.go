package middleware

import (
	"net/http"

	"github.com/SscSPs/pos_monedas/internal/envelope"
	"github.com/gin-gonic/gin"
)

// Error codes written by the middleware chain.
const (
	ErrCodeMissingHeaders = "E000"
	ErrCodeRateLimited    = "E004"
	ErrCodeInternal       = "E999"
)

// RequireCorrelationHeaders rejects requests missing message-uuid or request-app-id
// with a 400 envelope before any handler runs.
func RequireCorrelationHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		messageUUID, requestAppID := readCorrelationHeaders(c)
		if messageUUID == "" || requestAppID == "" {
			GetLoggerFromContext(c).Warn("Correlation headers missing",
				"has_message_uuid", messageUUID != "",
				"has_request_app_id", requestAppID != "")
			echoUUID, echoAppID := GetCorrelationFromContext(c)
			AbortWithError(c, http.StatusBadRequest, echoUUID, echoAppID,
				envelope.BuildErrorItem(ErrCodeMissingHeaders, "Headers requeridos: message-uuid y request-app-id"))
			return
		}

		c.Set(string(messageUUIDKey), messageUUID)
		c.Set(string(requestAppIDKey), requestAppID)
		c.Next()
	}
}

// AbortWithError writes an error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, status int, messageUUID, requestAppID string, items ...envelope.ErrorItem) {
	c.AbortWithStatusJSON(status, envelope.BuildErrorResponse(status, items, messageUUID, requestAppID))
}
