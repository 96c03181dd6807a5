package models

import "fmt"

type ReservationErrorKind string

const (
	ErrSlotUnavailable   ReservationErrorKind = "SLOT_UNAVAILABLE"
	ErrAlreadyReserved   ReservationErrorKind = "ALREADY_RESERVED"
	ErrReservationGone   ReservationErrorKind = "NOT_FOUND"
	ErrInvalidTransition ReservationErrorKind = "INVALID_TRANSITION"
	ErrReservationLapsed ReservationErrorKind = "EXPIRED"
)

// ReservationError is the closed failure set of the reservation state
// machine. Every instance carries a technical message for logs and a
// user-facing message for the purchase flow.
type ReservationError struct {
	Kind        ReservationErrorKind
	Message     string
	UserMessage string
	Retryable   bool
}

func (e *ReservationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewSlotUnavailableError() *ReservationError {
	return &ReservationError{
		Kind:        ErrSlotUnavailable,
		Message:     "no free inventory slot available",
		UserMessage: "All slots are taken right now, please try again in a moment",
		Retryable:   true,
	}
}

func NewAlreadyReservedError(walletID string) *ReservationError {
	return &ReservationError{
		Kind:        ErrAlreadyReserved,
		Message:     fmt.Sprintf("wallet %s already holds an active reservation", walletID),
		UserMessage: "You already have an active reservation",
		Retryable:   false,
	}
}

func NewReservationNotFoundError(reservationID string) *ReservationError {
	return &ReservationError{
		Kind:        ErrReservationGone,
		Message:     fmt.Sprintf("reservation %s not found", reservationID),
		UserMessage: "Reservation not found",
		Retryable:   false,
	}
}

func NewInvalidTransitionError(from ReservationStatus, action string) *ReservationError {
	return &ReservationError{
		Kind:        ErrInvalidTransition,
		Message:     fmt.Sprintf("cannot %s a reservation in status %s", action, from),
		UserMessage: "This reservation is not in a state that allows that action",
		Retryable:   false,
	}
}

func NewReservationExpiredError(reservationID string) *ReservationError {
	return &ReservationError{
		Kind:        ErrReservationLapsed,
		Message:     fmt.Sprintf("reservation %s has expired", reservationID),
		UserMessage: "Your reservation expired, please start over",
		Retryable:   false,
	}
}
