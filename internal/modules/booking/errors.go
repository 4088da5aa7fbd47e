package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrRoomNotFound = errors.New("room not found")
	ErrNoBookings   = errors.New("no bookings found")
)

// ValidationError names the request fields that were missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: missing %s", strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NoBookingsError distinguishes "unknown customer" from a customer with an
// empty history: the former is an error, the latter cannot occur because
// bookings are never deleted.
type NoBookingsError struct {
	CustomerName string
}

func (e *NoBookingsError) Error() string {
	return fmt.Sprintf("no bookings found for customer: %s", e.CustomerName)
}

func (e *NoBookingsError) Unwrap() error { return ErrNoBookings }
