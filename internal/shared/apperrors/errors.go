package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so controllers can map it to an HTTP status
// without string-matching error text.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindBookingState
	KindInsufficientSeats
	KindGatewayFailure
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindValidation:
		return "VALIDATION"
	case KindConflict:
		return "CONFLICT"
	case KindBookingState:
		return "BOOKING_STATE"
	case KindInsufficientSeats:
		return "INSUFFICIENT_SEATS"
	case KindGatewayFailure:
		return "GATEWAY_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// Error is a classified application error. It wraps an optional cause so
// callers can still use errors.Is/errors.As on the chain.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds a Not-Found error for a missing entity.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation builds a Validation error for malformed input.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a Conflict error for duplicate data.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// BookingState builds an error for an operation not permitted in the
// booking's or payment's current status.
func BookingState(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBookingState, Message: fmt.Sprintf(format, args...)}
}

// GatewayFailure wraps an external payment gateway error.
func GatewayFailure(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindGatewayFailure, Message: fmt.Sprintf(format, args...), Err: cause}
}

// InsufficientSeatsError carries the required/available counts for a
// fare class so callers can surface them.
type InsufficientSeatsError struct {
	FareClass string
	Required  int
	Available int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("insufficient %s class seats available. Required: %d, Available: %d",
		e.FareClass, e.Required, e.Available)
}

// KindOf extracts the Kind from anywhere in an error chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var seatsErr *InsufficientSeatsError
	if errors.As(err, &seatsErr) {
		return KindInsufficientSeats
	}
	return KindUnknown
}

// IsNotFound reports whether err is classified Not-Found.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflict reports whether err is classified Conflict.
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

// HTTPStatus maps an error chain to the HTTP status controllers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict, KindBookingState, KindInsufficientSeats:
		return http.StatusConflict
	case KindGatewayFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
