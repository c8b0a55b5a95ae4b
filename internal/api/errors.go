// errors.go - Structured error handling for API responses
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/katalvlaran/kaleido/generate"
	"github.com/katalvlaran/kaleido/lattice"
	"github.com/katalvlaran/kaleido/sample"
	"github.com/katalvlaran/kaleido/schema"
)

// APIError represents a structured API error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewValidationError creates a 400 validation error for a specific query
// parameter or field
func NewValidationError(field string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("validation failed for field: %s", field),
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewUnsupportedMediaTypeError creates a 415 error for undecodable bodies
func NewUnsupportedMediaTypeError(mediaType string) *APIError {
	return &APIError{
		Status:  http.StatusUnsupportedMediaType,
		Code:    "UNSUPPORTED_MEDIA_TYPE",
		Message: fmt.Sprintf("unsupported content type: %s", mediaType),
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// domainError classifies errors returned by the kaleido packages: anything
// caused by the request content is a 400, the rest is a 500.
func domainError(message string, err error) *APIError {
	for _, target := range []error{
		schema.ErrMalformed,
		schema.ErrUnsupportedVariant,
		generate.ErrEmptyChoice,
		generate.ErrMissingValue,
		generate.ErrTooManyObjects,
		lattice.ErrNegativeDepth,
		sample.ErrUnknownColor,
	} {
		if errors.Is(err, target) {
			return NewBadRequestError(message, err)
		}
	}
	return NewInternalError(message, err)
}

// NewErrorHandler returns an echo.HTTPErrorHandler that renders every error
// as an APIError and logs server-side failures.
// Usage: e.HTTPErrorHandler = api.NewErrorHandler(log)
func NewErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *APIError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &apiErr):
		case errors.As(err, &httpErr):
			apiErr = &APIError{
				Status:  httpErr.Code,
				Code:    "HTTP_ERROR",
				Message: fmt.Sprintf("%v", httpErr.Message),
			}
		default:
			apiErr = NewInternalError("An unexpected error occurred", err)
		}

		if apiErr.Status >= http.StatusInternalServerError {
			log.Error("request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.Int("status", apiErr.Status),
				slog.String("error", err.Error()))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(apiErr.Status)
		} else {
			err = c.JSON(apiErr.Status, apiErr)
		}
		if err != nil {
			log.Warn("failed to write error response", slog.String("error", err.Error()))
		}
	}
}
