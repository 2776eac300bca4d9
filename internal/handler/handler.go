package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "wardrobe/internal/errors"
)

// invalidBody is returned when a request body cannot be bound.
func invalidBody() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_BODY",
	})
}

// validationFailed wraps validator errors in the standard error envelope.
func validationFailed(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_FAILED",
	})
}
