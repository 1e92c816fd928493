package models

import "fmt"

// BookingState drives the allowed status transitions of a booking.
// Permitted transitions: pending -> confirmed|cancelled,
// confirmed -> completed|cancelled. Cancelled and completed are terminal.
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Complete(booking *Booking) error
}

type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return fmt.Errorf("cannot change status from %s to %s", BookingStatusPending, BookingStatusCompleted)
}

type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return fmt.Errorf("cannot change status from %s to %s", BookingStatusConfirmed, BookingStatusConfirmed)
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = BookingStatusCompleted
	return nil
}

type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return fmt.Errorf("cannot change status from %s to %s", BookingStatusCompleted, BookingStatusConfirmed)
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return fmt.Errorf("cannot change status from %s to %s", BookingStatusCompleted, BookingStatusCancelled)
}

func (s *CompletedState) Complete(booking *Booking) error {
	return fmt.Errorf("cannot change status from %s to %s", BookingStatusCompleted, BookingStatusCompleted)
}

type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return fmt.Errorf("cannot change status from %s to %s", BookingStatusCancelled, BookingStatusConfirmed)
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return fmt.Errorf("cannot change status from %s to %s", BookingStatusCancelled, BookingStatusCancelled)
}

func (s *CancelledState) Complete(booking *Booking) error {
	return fmt.Errorf("cannot change status from %s to %s", BookingStatusCancelled, BookingStatusCompleted)
}

// GetBookingState returns the state matching the booking status
func GetBookingState(status string) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusCompleted:
		return &CompletedState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
