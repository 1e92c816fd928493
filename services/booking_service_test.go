package services_test

import (
	"testing"
	"time"

	errs "travelapp/errors"
	"travelapp/models"
	"travelapp/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeListingRepo struct {
	listings map[uuid.UUID]*models.Listing
}

func (f *fakeListingRepo) Get(id uuid.UUID) (*models.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, errs.ErrListingNotFound
	}
	return listing, nil
}

func (f *fakeListingRepo) GetIfPublishedAndAvailable(id uuid.UUID) (*models.Listing, error) {
	listing, ok := f.listings[id]
	if !ok || listing.Status != "published" || !listing.IsAvailable {
		return nil, errs.ErrListingNotFound
	}
	return listing, nil
}

type fakeBookingRepo struct {
	bookings  []*models.Booking
	insertErr error
}

func (f *fakeBookingRepo) Insert(booking *models.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(id uuid.UUID) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, errs.ErrBookingNotFound
}

func (f *fakeBookingRepo) FindOverlapping(listingID uuid.UUID, checkIn, checkOut time.Time, statuses []string) ([]models.Booking, error) {
	var found []models.Booking
	for _, b := range f.bookings {
		if b.ListingID != listingID {
			continue
		}
		matched := false
		for _, s := range statuses {
			if b.Status == s {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn) {
			found = append(found, *b)
		}
	}
	return found, nil
}

func (f *fakeBookingRepo) UpdateStatus(id uuid.UUID, status string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			copied := *b
			return &copied, nil
		}
	}
	return nil, errs.ErrBookingNotFound
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func newTestService() (*services.BookingService, *models.Listing, *fakeBookingRepo) {
	listing := &models.Listing{
		ID:            uuid.New(),
		Title:         "Beach House",
		Status:        "published",
		IsAvailable:   true,
		PricePerNight: 120,
		Currency:      "USD",
		MaxGuests:     4,
		MinimumStay:   2,
		MaximumStay:   intPtr(14),
	}
	listings := &fakeListingRepo{listings: map[uuid.UUID]*models.Listing{listing.ID: listing}}
	bookings := &fakeBookingRepo{}
	svc := services.NewBookingServiceWithOptions(services.BookingServiceOptions{
		Listings: listings,
		Bookings: bookings,
		Now:      func() time.Time { return date(2025, time.May, 1) },
	})
	return svc, listing, bookings
}

func TestCreateBookingComputesTotalPrice(t *testing.T) {
	svc, listing, repo := newTestService()

	booking, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 5),
		Guests:    2,
	})
	assert.NoError(t, err)
	assert.Equal(t, "pending", booking.Status)
	assert.Equal(t, 4, booking.Nights())
	assert.Equal(t, 480.0, booking.TotalPrice)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingUnknownListing(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: uuid.New(),
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 5),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidListing))
}

func TestCreateBookingUnpublishedListing(t *testing.T) {
	svc, listing, _ := newTestService()
	listing.Status = "draft"

	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 5),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidListing))
}

func TestCreateBookingUnavailableListing(t *testing.T) {
	svc, listing, _ := newTestService()
	listing.IsAvailable = false

	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 5),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidListing))
}

func TestCreateBookingCheckInMustBeFuture(t *testing.T) {
	svc, listing, _ := newTestService()

	// Check-in on the current date is not strictly in the future.
	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.May, 1),
		CheckOut:  date(2025, time.May, 5),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDate))

	_, err = svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.April, 20),
		CheckOut:  date(2025, time.April, 25),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDate))
}

func TestCreateBookingCheckOutNotAfterCheckIn(t *testing.T) {
	svc, listing, _ := newTestService()

	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 5),
		CheckOut:  date(2025, time.June, 5),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDateRange))

	_, err = svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 5),
		CheckOut:  date(2025, time.June, 3),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDateRange))
}

func TestCreateBookingCapacityExceeded(t *testing.T) {
	svc, listing, _ := newTestService()

	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 5),
		Guests:    5,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeCapacityExceeded))
	appErr := errs.GetAppError(err)
	assert.Equal(t, "Number of guests cannot exceed 4.", appErr.Message)
}

func TestCreateBookingStayDuration(t *testing.T) {
	svc, listing, _ := newTestService()

	// One night is below the two-night minimum.
	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 2),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeStayDurationInvalid))

	// Fifteen nights exceeds the fourteen-night maximum.
	_, err = svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 16),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeStayDurationInvalid))

	// A two-night stay with the full guest count is admitted.
	booking, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 3),
		Guests:    4,
	})
	assert.NoError(t, err)
	assert.Equal(t, 240.0, booking.TotalPrice)
}

func TestCreateBookingNoMaximumStay(t *testing.T) {
	svc, listing, _ := newTestService()
	listing.MaximumStay = nil

	booking, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.July, 15),
		Guests:    2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 44, booking.Nights())
}

func TestCreateBookingOverlap(t *testing.T) {
	svc, listing, repo := newTestService()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID:           uuid.New(),
		ListingID:    listing.ID,
		UserID:       3,
		CheckInDate:  date(2025, time.June, 1),
		CheckOutDate: date(2025, time.June, 5),
		Status:       models.BookingStatusConfirmed,
	})

	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 4),
		CheckOut:  date(2025, time.June, 8),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeDateRangeUnavailable))

	// Check-out day is exclusive, so a stay starting on it is admitted.
	booking, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 5),
		CheckOut:  date(2025, time.June, 8),
		Guests:    2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, booking.Nights())
}

func TestCreateBookingIgnoresSettledBookings(t *testing.T) {
	svc, listing, repo := newTestService()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID:           uuid.New(),
		ListingID:    listing.ID,
		UserID:       3,
		CheckInDate:  date(2025, time.June, 1),
		CheckOutDate: date(2025, time.June, 5),
		Status:       models.BookingStatusCancelled,
	})

	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 2),
		CheckOut:  date(2025, time.June, 6),
		Guests:    2,
	})
	assert.NoError(t, err)
}

func TestCreateBookingWriteConflict(t *testing.T) {
	svc, listing, repo := newTestService()
	repo.insertErr = errs.ErrDatesUnavailable

	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 5),
		Guests:    2,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeDateRangeUnavailable))
}

func TestCreateBookingChecksRunInOrder(t *testing.T) {
	svc, listing, _ := newTestService()

	// Both the guest count and the stay duration are wrong; the capacity
	// check comes first.
	_, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID: listing.ID,
		UserID:    7,
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 2),
		Guests:    5,
	})
	assert.True(t, errs.HasCode(err, errs.ErrCodeCapacityExceeded))
}

func TestChangeStatusLifecycle(t *testing.T) {
	svc, listing, repo := newTestService()
	id := uuid.New()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID:        id,
		ListingID: listing.ID,
		UserID:    7,
		Status:    models.BookingStatusPending,
	})

	booking, err := svc.ChangeStatus(id, models.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

	booking, err = svc.ChangeStatus(id, models.BookingStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, booking.Status)

	// Completed is terminal.
	_, err = svc.ChangeStatus(id, models.BookingStatusCancelled)
	assert.True(t, errs.HasCode(err, errs.ErrCodeIllegalTransition))
}

func TestChangeStatusIllegalTransitions(t *testing.T) {
	svc, listing, repo := newTestService()

	pendingID := uuid.New()
	cancelledID := uuid.New()
	repo.bookings = append(repo.bookings,
		&models.Booking{ID: pendingID, ListingID: listing.ID, Status: models.BookingStatusPending},
		&models.Booking{ID: cancelledID, ListingID: listing.ID, Status: models.BookingStatusCancelled},
	)

	// Pending bookings cannot skip straight to completed.
	_, err := svc.ChangeStatus(pendingID, models.BookingStatusCompleted)
	assert.True(t, errs.HasCode(err, errs.ErrCodeIllegalTransition))

	// Cancelled bookings stay cancelled.
	_, err = svc.ChangeStatus(cancelledID, models.BookingStatusConfirmed)
	assert.True(t, errs.HasCode(err, errs.ErrCodeIllegalTransition))
	assert.Contains(t, err.Error(), "cannot change status from cancelled to confirmed")

	_, err = svc.ChangeStatus(cancelledID, models.BookingStatusCompleted)
	assert.True(t, errs.HasCode(err, errs.ErrCodeIllegalTransition))
}

func TestChangeStatusUnknownBooking(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ChangeStatus(uuid.New(), models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, errs.ErrBookingNotFound)
}

func TestChangeStatusUnknownTarget(t *testing.T) {
	svc, listing, repo := newTestService()
	id := uuid.New()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID:        id,
		ListingID: listing.ID,
		Status:    models.BookingStatusPending,
	})

	_, err := svc.ChangeStatus(id, "archived")
	assert.True(t, errs.HasCode(err, errs.ErrCodeIllegalTransition))
}
