package envelope

import "net/http"

var statusDescriptions = map[int]string{
	http.StatusOK:                   "OK",
	http.StatusCreated:              "CREATED",
	http.StatusBadRequest:           "BAD_REQUEST",
	http.StatusNotFound:             "NOT_FOUND",
	http.StatusMethodNotAllowed:     "METHOD_NOT_ALLOWED",
	http.StatusConflict:             "CONFLICT",
	http.StatusUnsupportedMediaType: "UNSUPPORTED_MEDIA_TYPE",
	http.StatusTooManyRequests:      "TOO_MANY_REQUESTS",
	http.StatusInternalServerError:  "INTERNAL_SERVER_ERROR",
	http.StatusBadGateway:           "BAD_GATEWAY",
	http.StatusServiceUnavailable:   "SERVICE_UNAVAILABLE",
}

var defaultErrorMessages = map[int]string{
	http.StatusBadRequest:           "Bad Request",
	http.StatusNotFound:             "Not Found",
	http.StatusMethodNotAllowed:     "Method Not Allowed",
	http.StatusConflict:             "Conflict",
	http.StatusUnsupportedMediaType: "Unsupported Media Type",
	http.StatusTooManyRequests:      "Too Many Requests",
	http.StatusInternalServerError:  "Internal Server Error",
	http.StatusBadGateway:           "Bad Gateway",
	http.StatusServiceUnavailable:   "Service Unavailable",
}

var defaultErrorDetails = map[int]string{
	http.StatusBadRequest:           "Invalid or malformed request data",
	http.StatusNotFound:             "Resource not found",
	http.StatusMethodNotAllowed:     "Operation not allowed for this endpoint",
	http.StatusConflict:             "Resource already exists or violates unique constraint",
	http.StatusUnsupportedMediaType: "Content-Type must be application/json",
	http.StatusTooManyRequests:      "Request rate limit exceeded",
	http.StatusInternalServerError:  "Unexpected error in server execution",
	http.StatusBadGateway:           "Upstream service error",
	http.StatusServiceUnavailable:   "Service temporarily unavailable",
}

// StatusDescription returns the canonical description for a status code, or "UNKNOWN".
func StatusDescription(statusCode int) string {
	if desc, ok := statusDescriptions[statusCode]; ok {
		return desc
	}
	return "UNKNOWN"
}

// DefaultErrorMessage returns the short error message for a status code, or "Error".
func DefaultErrorMessage(statusCode int) string {
	if msg, ok := defaultErrorMessages[statusCode]; ok {
		return msg
	}
	return "Error"
}

// DefaultErrorDetails returns the error detail string for a status code.
func DefaultErrorDetails(statusCode int) string {
	if details, ok := defaultErrorDetails[statusCode]; ok {
		return details
	}
	return "An error occurred"
}
