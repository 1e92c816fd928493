package services

import (
	"errors"
	"fmt"
	"time"

	"travelapp/builders"
	errs "travelapp/errors"
	"travelapp/models"
	"travelapp/repository"
	"travelapp/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdmissionRequest is a candidate reservation. The requester identity is an
// explicit field, never read from ambient state.
type AdmissionRequest struct {
	ListingID       uuid.UUID
	UserID          uint
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
}

// BookingServiceOptions configures a BookingService
type BookingServiceOptions struct {
	Listings repository.ListingRepository
	Bookings repository.BookingRepository
	Logger   logger.Logger
	Now      func() time.Time
}

// BookingService decides whether a reservation request is admitted and
// guards booking status transitions.
type BookingService struct {
	listings repository.ListingRepository
	bookings repository.BookingRepository
	log      logger.Logger
	now      func() time.Time
}

// NewBookingService creates a BookingService backed by gorm repositories
func NewBookingService(db *gorm.DB) *BookingService {
	return NewBookingServiceWithOptions(BookingServiceOptions{
		Listings: repository.NewListingRepository(db),
		Bookings: repository.NewBookingRepository(db),
	})
}

// NewBookingServiceWithOptions creates a BookingService with explicit collaborators
func NewBookingServiceWithOptions(opts BookingServiceOptions) *BookingService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &BookingService{
		listings: opts.Listings,
		bookings: opts.Bookings,
		log:      opts.Logger,
		now:      opts.Now,
	}
}

// dateOnly drops the time-of-day component so stays compare at date precision
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateBooking validates a reservation request and, when admitted, persists a
// new pending booking with the total price derived from the nightly price.
// Checks run in order and stop at the first violation.
func (s *BookingService) CreateBooking(req AdmissionRequest) (*models.Booking, error) {
	listing, err := s.listings.GetIfPublishedAndAvailable(req.ListingID)
	if err != nil {
		if errors.Is(err, errs.ErrListingNotFound) {
			return nil, errs.NewAppError(errs.ErrCodeInvalidListing,
				"Invalid listing ID or listing is not available for booking.", nil)
		}
		return nil, err
	}

	today := dateOnly(s.now())
	checkIn := dateOnly(req.CheckIn)
	checkOut := dateOnly(req.CheckOut)

	if !checkIn.After(today) {
		return nil, errs.NewAppError(errs.ErrCodeInvalidDate,
			"Check-in date must be in the future.", nil)
	}
	if !checkOut.After(today) {
		return nil, errs.NewAppError(errs.ErrCodeInvalidDate,
			"Check-out date must be in the future.", nil)
	}

	if !checkOut.After(checkIn) {
		return nil, errs.NewAppError(errs.ErrCodeInvalidDateRange,
			"Check-out date must be after check-in date.", nil)
	}

	if req.Guests > listing.MaxGuests {
		return nil, errs.NewAppError(errs.ErrCodeCapacityExceeded,
			fmt.Sprintf("Number of guests cannot exceed %d.", listing.MaxGuests), nil)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < listing.MinimumStay {
		return nil, errs.NewAppError(errs.ErrCodeStayDurationInvalid,
			fmt.Sprintf("Minimum stay is %d nights.", listing.MinimumStay), nil)
	}
	if listing.MaximumStay != nil && nights > *listing.MaximumStay {
		return nil, errs.NewAppError(errs.ErrCodeStayDurationInvalid,
			fmt.Sprintf("Maximum stay is %d nights.", *listing.MaximumStay), nil)
	}

	overlapping, err := s.bookings.FindOverlapping(listing.ID, checkIn, checkOut,
		[]string{models.BookingStatusPending, models.BookingStatusConfirmed})
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, errs.NewAppError(errs.ErrCodeDateRangeUnavailable,
			"The selected dates are not available for booking.", nil)
	}

	totalPrice := listing.PricePerNight * float64(nights)

	booking := builders.NewBookingBuilder().
		WithListing(listing.ID).
		WithUser(req.UserID).
		WithDates(checkIn, checkOut).
		WithGuests(req.Guests).
		WithSpecialRequests(req.SpecialRequests).
		WithStatus(models.BookingStatusPending).
		WithTotalPrice(totalPrice).
		Build()

	if err := s.bookings.Insert(booking); err != nil {
		// A concurrent request may have taken the range between the pre-check
		// and the insert; the repository re-checks under a listing lock.
		if errors.Is(err, errs.ErrDatesUnavailable) {
			return nil, errs.NewAppError(errs.ErrCodeDateRangeUnavailable,
				"The selected dates are not available for booking.", nil)
		}
		return nil, err
	}

	s.log.Info("booking %s admitted for listing %s: %d nights, total %.2f %s",
		booking.ID, listing.ID, nights, totalPrice, listing.Currency)

	return booking, nil
}

// ChangeStatus moves a booking to the requested target status. Permitted
// transitions are pending -> confirmed|cancelled and confirmed ->
// completed|cancelled; anything else fails naming both states.
func (s *BookingService) ChangeStatus(id uuid.UUID, target string) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}

	state := models.GetBookingState(booking.Status)

	switch target {
	case models.BookingStatusConfirmed:
		err = state.Confirm(booking)
	case models.BookingStatusCancelled:
		err = state.Cancel(booking)
	case models.BookingStatusCompleted:
		err = state.Complete(booking)
	default:
		err = fmt.Errorf("cannot change status from %s to %s", booking.Status, target)
	}
	if err != nil {
		return nil, errs.NewAppError(errs.ErrCodeIllegalTransition, err.Error(), nil)
	}

	updated, err := s.bookings.UpdateStatus(booking.ID, booking.Status)
	if err != nil {
		return nil, err
	}

	s.log.Info("booking %s moved to %s", updated.ID, updated.Status)
	return updated, nil
}
