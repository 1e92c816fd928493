package builders

import (
	"time"

	"travelapp/models"

	"github.com/google/uuid"
)

// BookingBuilder assembles a booking step by step
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder creates a new BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithListing sets the listing being booked
func (b *BookingBuilder) WithListing(listingID uuid.UUID) *BookingBuilder {
	b.booking.ListingID = listingID
	return b
}

// WithUser sets the requesting user
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithDates sets the half-open stay range
func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithGuests sets the guest count
func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.booking.Guests = guests
	return b
}

// WithStatus sets the booking status
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithSpecialRequests sets the optional free-text note
func (b *BookingBuilder) WithSpecialRequests(note string) *BookingBuilder {
	b.booking.SpecialRequests = note
	return b
}

// WithTotalPrice sets the derived total price
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Build returns the assembled booking
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
