package httputil

import (
	"context"
	"errors"
	"net/http"
)

// ErrorBody is the JSON envelope returned for every failed request. Kind is a
// stable machine-readable error identifier, Message is for humans.
type ErrorBody struct {
	Kind    string `json:"error"`
	Message string `json:"message"`
}

// HTTPErrorInfo contains the HTTP status code and body for an error.
type HTTPErrorInfo struct {
	Status int
	Body   ErrorBody
}

// ErrorMapping represents a single error to HTTP status/kind/message mapping.
type ErrorMapping struct {
	Error   error
	Status  int
	Kind    string
	Message string
}

// ErrorMapper maps domain errors to HTTP responses. It provides a centralized
// way to handle error mapping across handlers so raw driver errors never
// reach clients unformatted.
type ErrorMapper struct {
	mappings []ErrorMapping
	fallback HTTPErrorInfo
}

// NewErrorMapper creates a new ErrorMapper with a store_error 500 fallback.
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		fallback: HTTPErrorInfo{
			Status: http.StatusInternalServerError,
			Body:   ErrorBody{Kind: "store_error", Message: "internal server error"},
		},
	}
}

// WithMapping adds an error mapping to the mapper.
func (m *ErrorMapper) WithMapping(err error, status int, kind, message string) *ErrorMapper {
	m.mappings = append(m.mappings, ErrorMapping{Error: err, Status: status, Kind: kind, Message: message})
	return m
}

// WithDefault sets the fallback status, kind and message for unmatched errors.
func (m *ErrorMapper) WithDefault(status int, kind, message string) *ErrorMapper {
	m.fallback = HTTPErrorInfo{Status: status, Body: ErrorBody{Kind: kind, Message: message}}
	return m
}

// Map converts an error to an HTTP status and response body.
func (m *ErrorMapper) Map(err error) HTTPErrorInfo {
	if err == nil {
		return HTTPErrorInfo{Status: http.StatusOK}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPErrorInfo{Status: http.StatusGatewayTimeout, Body: ErrorBody{Kind: "store_error", Message: "request timeout"}}
	}
	if errors.Is(err, context.Canceled) {
		return HTTPErrorInfo{Status: http.StatusServiceUnavailable, Body: ErrorBody{Kind: "store_error", Message: "request cancelled"}}
	}

	for _, mapping := range m.mappings {
		if errors.Is(err, mapping.Error) {
			message := mapping.Message
			if message == "" {
				message = err.Error()
			}
			return HTTPErrorInfo{Status: mapping.Status, Body: ErrorBody{Kind: mapping.Kind, Message: message}}
		}
	}

	return m.fallback
}
