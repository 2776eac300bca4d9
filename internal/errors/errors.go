package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when login_id or password is incorrect.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("login_id or password is incorrect")
	// ErrLoginIDTaken is returned when registering with an existing login_id.
	ErrLoginIDTaken = errors.New("login_id is already taken")
	// ErrInvalidToken is returned when a session token is missing or revoked.
	ErrInvalidToken = errors.New("invalid or revoked token")
	// ErrCategoryNameTaken is returned on duplicate category names.
	ErrCategoryNameTaken = errors.New("category name is already taken")
	// ErrTypeNameTaken is returned on duplicate type names.
	ErrTypeNameTaken = errors.New("type name is already taken")
	// ErrCategoryNotFound is returned when a clothes record references a
	// category that does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTypeNotFound is returned when a clothes record references a type
	// that does not exist.
	ErrTypeNotFound = errors.New("type not found")
	// ErrClothesNotFound is returned when a clothes record does not exist or
	// is owned by another user. Both cases answer identically so the catalog
	// never leaks which records other users hold.
	ErrClothesNotFound = errors.New("clothes not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate names and
// dangling references map to 422 like every other validation failure.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrClothesNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLOTHES_NOT_FOUND")
	case ErrCategoryNotFound:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "CATEGORY_NOT_FOUND")
	case ErrTypeNotFound:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "TYPE_NOT_FOUND")
	case ErrCategoryNameTaken:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "CATEGORY_NAME_TAKEN")
	case ErrTypeNameTaken:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "TYPE_NAME_TAKEN")
	case ErrLoginIDTaken:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "LOGIN_ID_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_CREDENTIALS")
	case ErrInvalidToken:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
