package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_monedas/internal/envelope"
	"github.com/gin-gonic/gin"
)

// Recovery turns panics into an opaque 500 envelope and logs the panic value.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromContext(c).Error("Panic recovered", slog.String("panic", fmt.Sprint(recovered)))
		messageUUID, requestAppID := GetCorrelationFromContext(c)
		AbortWithError(c, http.StatusInternalServerError, messageUUID, requestAppID,
			envelope.BuildErrorItem(ErrCodeInternal, "Internal server error"))
	})
}
