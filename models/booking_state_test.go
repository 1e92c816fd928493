package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func applyTransition(t *testing.T, from, to string) error {
	t.Helper()
	booking := &Booking{Status: from}
	state := GetBookingState(from)
	switch to {
	case BookingStatusConfirmed:
		return state.Confirm(booking)
	case BookingStatusCancelled:
		return state.Cancel(booking)
	case BookingStatusCompleted:
		return state.Complete(booking)
	}
	t.Fatalf("unknown target status %q", to)
	return nil
}

func TestBookingStateTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},

		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},

		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusCompleted, false},

		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusCompleted, false},
	}

	for _, tc := range cases {
		err := applyTransition(t, tc.from, tc.to)
		if tc.allowed {
			assert.NoError(t, err, "%s -> %s should be allowed", tc.from, tc.to)
		} else {
			assert.Error(t, err, "%s -> %s should be rejected", tc.from, tc.to)
			assert.Contains(t, err.Error(), tc.from)
			assert.Contains(t, err.Error(), tc.to)
		}
	}
}

func TestBookingStateMutatesStatus(t *testing.T) {
	booking := &Booking{Status: BookingStatusPending}

	err := GetBookingState(booking.Status).Confirm(booking)
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, booking.Status)

	err = GetBookingState(booking.Status).Complete(booking)
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusCompleted, booking.Status)
}

func TestBookingStateRejectionKeepsStatus(t *testing.T) {
	booking := &Booking{Status: BookingStatusCancelled}

	err := GetBookingState(booking.Status).Confirm(booking)
	assert.Error(t, err)
	assert.Equal(t, BookingStatusCancelled, booking.Status)
}
