package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error messages returned to clients
const (
	MsgMalformattedID      = "malformatted id"
	MsgUnknownEndpoint     = "unknown endpoint"
	MsgMalformattedBody    = "malformatted request body"
	MsgInternalServerError = "internal server error"
	MsgTooManyRequests     = "too many requests"
)

// ErrorResponse is the JSON body of every error response: {"error": "..."}.
// Status is carried alongside but never serialized.
type ErrorResponse struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *ErrorResponse) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewBadRequestError(message string) *ErrorResponse {
	return &ErrorResponse{Status: http.StatusBadRequest, Message: message}
}

func NewMalformattedIDError() *ErrorResponse {
	return NewBadRequestError(MsgMalformattedID)
}

func NewUnknownEndpointError() *ErrorResponse {
	return &ErrorResponse{Status: http.StatusNotFound, Message: MsgUnknownEndpoint}
}

func NewInternalError() *ErrorResponse {
	return &ErrorResponse{Status: http.StatusInternalServerError, Message: MsgInternalServerError}
}

func NewTooManyRequestsError() *ErrorResponse {
	return &ErrorResponse{Status: http.StatusTooManyRequests, Message: MsgTooManyRequests}
}

func NewServiceUnavailableError(message string) *ErrorResponse {
	return &ErrorResponse{Status: http.StatusServiceUnavailable, Message: message}
}
