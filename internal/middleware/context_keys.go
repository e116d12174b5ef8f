package middleware

import "github.com/gin-gonic/gin"

// Header names carrying the caller's correlation identifiers.
const (
	HeaderMessageUUID  = "message-uuid"
	HeaderRequestAppID = "request-app-id"
)

// unknownCorrelation is echoed back when the caller did not send an identifier.
const unknownCorrelation = "unknown"

const (
	messageUUIDKey  = contextKey("messageUUID")
	requestAppIDKey = contextKey("requestAppID")
)

// readCorrelationHeaders reads both identifiers. Header lookup is case-insensitive.
func readCorrelationHeaders(c *gin.Context) (messageUUID, requestAppID string) {
	return c.GetHeader(HeaderMessageUUID), c.GetHeader(HeaderRequestAppID)
}

// GetCorrelationFromContext returns the identifiers stored by RequireCorrelationHeaders.
// Identifiers that were never stored are read from the request headers, and
// reported as "unknown" when absent there too.
func GetCorrelationFromContext(c *gin.Context) (messageUUID, requestAppID string) {
	messageUUID = c.GetString(string(messageUUIDKey))
	requestAppID = c.GetString(string(requestAppIDKey))
	if messageUUID == "" || requestAppID == "" {
		hdrUUID, hdrAppID := readCorrelationHeaders(c)
		if messageUUID == "" {
			messageUUID = hdrUUID
		}
		if requestAppID == "" {
			requestAppID = hdrAppID
		}
	}
	if messageUUID == "" {
		messageUUID = unknownCorrelation
	}
	if requestAppID == "" {
		requestAppID = unknownCorrelation
	}
	return messageUUID, requestAppID
}
