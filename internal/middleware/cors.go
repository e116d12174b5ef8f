package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static CORS response headers sent on every response.
const (
	corsContentType    = "application/json"
	corsAllowedHeaders = "*"
	corsAllowOrigin    = "*"
	corsAllowedMethods = "POST,GET,PUT,DELETE,OPTIONS"
)

// CORS sets the static CORS headers and answers every OPTIONS request with 200,
// ahead of header validation and routing.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", corsContentType)
		c.Header("Access-Control-Allow-Headers", corsAllowedHeaders)
		c.Header("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Header("Access-Control-Allow-Methods", corsAllowedMethods)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"message": "CORS preflight successful"})
			return
		}
		c.Next()
	}
}
