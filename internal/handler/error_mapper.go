package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/phonebook/internal/middleware"
	"github.com/forgo/phonebook/internal/model"
	"github.com/forgo/phonebook/internal/service"
)

// MapServiceError converts a service error to an error response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
//
// Not-found carries no body and is handled by writeServiceError.
func MapServiceError(err error) *model.ErrorResponse {
	if err == nil {
		return nil
	}

	var missing *model.MissingFieldError
	var invalid *model.ValidationError

	switch {
	// ===== Cast Errors → 400 =====
	case errors.Is(err, service.ErrMalformattedID):
		return model.NewMalformattedIDError()

	// ===== Validation Errors → 400 =====
	case errors.As(err, &missing):
		return model.NewBadRequestError(missing.Error())
	case errors.As(err, &invalid):
		return model.NewBadRequestError(invalid.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError()
	}
}

// writeServiceError answers a failed service call. Unexpected errors are
// logged with the request id before the generic 500 goes out.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrPersonNotFound) {
		WriteNotFound(w)
		return
	}

	resp := MapServiceError(err)
	if resp.Status == http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	WriteError(w, resp)
}
