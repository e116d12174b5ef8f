package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_monedas/internal/envelope"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewLimiter builds an in-memory limiter from a formatted rate such as "100-S" or "1000-H".
func NewLimiter(formattedRate string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit creates a Gin middleware for rate limiting requests per client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		lctx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			GetLoggerFromContext(c).Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			messageUUID, requestAppID := GetCorrelationFromContext(c)
			AbortWithError(c, http.StatusInternalServerError, messageUUID, requestAppID,
				envelope.BuildErrorItem(ErrCodeInternal, "Internal server error"))
			return
		}

		if lctx.Reached {
			GetLoggerFromContext(c).Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", lctx.Limit), slog.Int64("remaining_requests", lctx.Remaining))
			messageUUID, requestAppID := GetCorrelationFromContext(c)
			AbortWithError(c, http.StatusTooManyRequests, messageUUID, requestAppID,
				envelope.BuildErrorItem(ErrCodeRateLimited, "Demasiadas solicitudes, intente nuevamente más tarde"))
			return
		}

		c.Next()
	}
}
