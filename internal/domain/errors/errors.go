package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code used by the local HTTP surface
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.errorCode + ": " + e.message + " (" + e.details + ")"
	}

	return e.errorCode + ": " + e.message
}

// Is matches on the business error code so that copies made by WithDetails
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Location errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"invalid location input",
		"",
	)

	ErrLocationRequired = NewBaseError(
		http.StatusPreconditionRequired,
		"LOCATION_REQUIRED",
		"Please select your delivery location first.",
		"",
	)

	ErrDeliveryAddressRequired = NewBaseError(
		http.StatusPreconditionRequired,
		"DELIVERY_ADDRESS_REQUIRED",
		"Please select a delivery address",
		"",
	)

	ErrGeolocationFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOLOCATION_FAILED",
		"Unable to detect your current location",
		"",
	)

	ErrPickerCancelled = NewBaseError(
		http.StatusConflict,
		"PICKER_CANCELLED",
		"Location selection was cancelled",
		"",
	)

	// Warehouse errors
	ErrNotServiceable = NewBaseError(
		http.StatusUnprocessableEntity,
		"NOT_SERVICEABLE",
		"Sorry, we do not deliver to this location yet.",
		"",
	)

	ErrResolutionFailed = NewBaseError(
		http.StatusBadGateway,
		"RESOLUTION_FAILED",
		"Could not check delivery availability, please retry",
		"",
	)

	// Cart errors
	ErrCartConflict = NewBaseError(
		http.StatusConflict,
		"CART_CONFLICT",
		"Your cart items are from a different store.",
		"",
	)

	ErrNoPendingConflict = NewBaseError(
		http.StatusConflict,
		"NO_PENDING_CONFLICT",
		"There is no cart conflict to resolve",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	// Auth errors
	ErrAuthExpired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Please enter complete 6-digit OTP",
		"",
	)

	// Backend errors
	ErrUnrecognizedResponse = NewBaseError(
		http.StatusBadGateway,
		"UNRECOGNIZED_RESPONSE",
		"The server returned an unexpected response",
		"",
	)

	ErrBackend = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_ERROR",
		"An unexpected error occurred",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// BackendError carries a non-2xx response from the storefront API
type BackendError struct {
	status  int
	message string
}

// NewBackendError creates a backend error from a status code and extracted message
func NewBackendError(status int, message string) *BackendError {
	return &BackendError{status: status, message: message}
}

func (e *BackendError) Error() string {
	return "backend returned " + http.StatusText(e.status) + ": " + e.message
}

// Status returns the HTTP status returned by the backend
func (e *BackendError) Status() int {
	return e.status
}

func (e *BackendError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *BackendError) ErrorCode() string {
	return ErrBackend.ErrorCode()
}

func (e *BackendError) Message() string {
	return e.message
}

func (e *BackendError) Details() string {
	return http.StatusText(e.status)
}

// Is lets errors.Is(err, ErrBackend) match any backend response error
func (e *BackendError) Is(target error) bool {
	return target == error(ErrBackend)
}
