package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBookingState = errors.New("booking is not in a valid state for this operation")
	ErrPaymentFailed       = errors.New("payment failed")
	ErrNotFound            = errors.New("not found")
)

// SeatUnavailableError reports the first seat that could not be locked or
// whose lock was no longer held at confirmation time.
type SeatUnavailableError struct {
	SeatID string
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %s is temporarily unavailable", e.SeatID)
}

// UnknownSeatError reports a requested seat id that does not exist in the
// show's seat catalog.
type UnknownSeatError struct {
	SeatID string
}

func (e *UnknownSeatError) Error() string {
	return fmt.Sprintf("seat %s does not exist for this show", e.SeatID)
}
