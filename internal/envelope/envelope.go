// Package envelope builds the fixed response bodies returned by every endpoint:
// status metadata, message metadata, and a payload, a pagination block or a list of errors.
package envelope

import (
	"strconv"
	"time"

	"github.com/SscSPs/pos_monedas/internal/core/domain"
)

// Default message metadata for successful responses.
const (
	DefaultResponseCode    = "0000"
	DefaultResponseMessage = "Success"
	DefaultResponseDetails = "Operation completed successfully"
)

// requestDatetimeLayout is ISO-8601 in UTC with millisecond precision.
const requestDatetimeLayout = "2006-01-02T15:04:05.000Z"

// Headers is the status metadata block.
type Headers struct {
	HTTPStatusCode  int    `json:"httpStatusCode"`
	HTTPStatusDesc  string `json:"httpStatusDesc"`
	MessageUUID     string `json:"messageUuid"`
	RequestDatetime string `json:"requestDatetime"`
	RequestAppID    string `json:"requestAppId"`
}

// MessageResponse is the message metadata block.
type MessageResponse struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	ResponseDetails string `json:"responseDetails"`
}

// ErrorItem is one (code, detail) pair of an error response.
type ErrorItem struct {
	ErrorCode   string `json:"errorCode"`
	ErrorDetail string `json:"errorDetail"`
}

// SuccessResponse wraps a payload.
type SuccessResponse[T any] struct {
	Headers         Headers         `json:"headers"`
	MessageResponse MessageResponse `json:"messageResponse"`
	Data            T               `json:"data"`
}

// PaginatedResponse wraps a payload with a pagination block beside it.
type PaginatedResponse[T any] struct {
	Headers         Headers           `json:"headers"`
	MessageResponse MessageResponse   `json:"messageResponse"`
	Data            T                 `json:"data"`
	Pagination      domain.Pagination `json:"pagination"`
}

// ErrorResponse carries an ordered list of error items instead of a payload.
type ErrorResponse struct {
	Headers         Headers         `json:"headers"`
	MessageResponse MessageResponse `json:"messageResponse"`
	Errors          []ErrorItem     `json:"errors"`
}

type messageOptions struct {
	code    string
	message string
	details string
}

// Option overrides part of the message metadata.
type Option func(*messageOptions)

// WithResponseCode overrides the response code.
func WithResponseCode(code string) Option {
	return func(o *messageOptions) { o.code = code }
}

// WithResponseMessage overrides the short response message.
func WithResponseMessage(message string) Option {
	return func(o *messageOptions) { o.message = message }
}

// WithResponseDetails overrides the longer response detail string.
func WithResponseDetails(details string) Option {
	return func(o *messageOptions) { o.details = details }
}

func applyOptions(opts []Option) messageOptions {
	var o messageOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Builder constructs envelopes. The zero value uses the wall clock.
type Builder struct {
	// Now returns the timestamp stamped into requestDatetime.
	Now func() time.Time
}

func (b Builder) headers(statusCode int, messageUUID, requestAppID string) Headers {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return Headers{
		HTTPStatusCode:  statusCode,
		HTTPStatusDesc:  StatusDescription(statusCode),
		MessageUUID:     messageUUID,
		RequestDatetime: now().UTC().Format(requestDatetimeLayout),
		RequestAppID:    requestAppID,
	}
}

func successMessage(opts []Option) MessageResponse {
	o := applyOptions(opts)
	m := MessageResponse{
		ResponseCode:    DefaultResponseCode,
		ResponseMessage: DefaultResponseMessage,
		ResponseDetails: DefaultResponseDetails,
	}
	if o.code != "" {
		m.ResponseCode = o.code
	}
	if o.message != "" {
		m.ResponseMessage = o.message
	}
	if o.details != "" {
		m.ResponseDetails = o.details
	}
	return m
}

// Success builds a success envelope around data.
func Success[T any](b Builder, statusCode int, data T, messageUUID, requestAppID string, opts ...Option) SuccessResponse[T] {
	return SuccessResponse[T]{
		Headers:         b.headers(statusCode, messageUUID, requestAppID),
		MessageResponse: successMessage(opts),
		Data:            data,
	}
}

// Paginated builds a success envelope with a pagination block alongside data.
func Paginated[T any](b Builder, statusCode int, data T, pagination domain.Pagination, messageUUID, requestAppID string, opts ...Option) PaginatedResponse[T] {
	return PaginatedResponse[T]{
		Headers:         b.headers(statusCode, messageUUID, requestAppID),
		MessageResponse: successMessage(opts),
		Data:            data,
		Pagination:      pagination,
	}
}

// Error builds an error envelope. Unset message metadata falls back to "0"+status and the
// per-status default tables.
func (b Builder) Error(statusCode int, errs []ErrorItem, messageUUID, requestAppID string, opts ...Option) ErrorResponse {
	o := applyOptions(opts)
	m := MessageResponse{
		ResponseCode:    o.code,
		ResponseMessage: o.message,
		ResponseDetails: o.details,
	}
	if m.ResponseCode == "" {
		m.ResponseCode = "0" + strconv.Itoa(statusCode)
	}
	if m.ResponseMessage == "" {
		m.ResponseMessage = DefaultErrorMessage(statusCode)
	}
	if m.ResponseDetails == "" {
		m.ResponseDetails = DefaultErrorDetails(statusCode)
	}
	if errs == nil {
		errs = []ErrorItem{}
	}
	return ErrorResponse{
		Headers:         b.headers(statusCode, messageUUID, requestAppID),
		MessageResponse: m,
		Errors:          errs,
	}
}

// BuildSuccessResponse builds a success envelope stamped with the current time.
func BuildSuccessResponse[T any](statusCode int, data T, messageUUID, requestAppID string, opts ...Option) SuccessResponse[T] {
	return Success(Builder{}, statusCode, data, messageUUID, requestAppID, opts...)
}

// BuildPaginatedResponse builds a paginated envelope stamped with the current time.
func BuildPaginatedResponse[T any](statusCode int, data T, pagination domain.Pagination, messageUUID, requestAppID string, opts ...Option) PaginatedResponse[T] {
	return Paginated(Builder{}, statusCode, data, pagination, messageUUID, requestAppID, opts...)
}

// BuildErrorResponse builds an error envelope stamped with the current time.
func BuildErrorResponse(statusCode int, errs []ErrorItem, messageUUID, requestAppID string, opts ...Option) ErrorResponse {
	return Builder{}.Error(statusCode, errs, messageUUID, requestAppID, opts...)
}

// BuildErrorItem returns a single (code, detail) pair.
func BuildErrorItem(code, detail string) ErrorItem {
	return ErrorItem{ErrorCode: code, ErrorDetail: detail}
}
