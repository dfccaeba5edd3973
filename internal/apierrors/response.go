package apierrors

import (
	"errors"

	"tripvoice/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// RespondWithError handles error logging and sends a structured JSON response
// to the client. This is the primary function handlers should use for error
// responses.
//
// Unknown errors are converted to a sanitized InternalError; callers never
// see a raw stack trace or provider-internal detail beyond what the APIError
// message already carries.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = InternalError(err)
	}

	// Log the API error response for correlation with the operation's own
	// logs, which already carry the detailed failure.
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_kind", Value: string(apiErr.Kind)},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	logger.Info(ctx, "API error response")

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Error:      apiErr.Message,
		StatusCode: apiErr.StatusCode,
	})
}

// RespondWithValidationError handles Gin binding/validation errors and
// returns a 400 with the same {error, status_code} body shape.
//
// Example usage:
//
//	var req SomeRequest
//	if err := c.ShouldBindJSON(&req); err != nil {
//	    apierrors.RespondWithValidationError(c, err)
//	    return
//	}
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Error(ctx, "Validation failed", err)
		c.JSON(400, ErrorResponse{
			Error:      "Invalid request: " + validationErrs[0].Field() + " failed on " + validationErrs[0].Tag(),
			StatusCode: 400,
		})
		return
	}

	// Not a validation error - might be a JSON parsing error or other binding issue
	logger.Error(ctx, "Request binding failed", err)
	c.JSON(400, ErrorResponse{
		Error:      "Invalid request format",
		StatusCode: 400,
	})
}
