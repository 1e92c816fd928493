package repository_test

import (
	"testing"
	"time"

	errs "travelapp/errors"
	"travelapp/models"
	"travelapp/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Listing{},
		&models.ListingImage{},
		&models.Booking{},
		&models.Review{},
	)
	assert.NoError(t, err)
	return db
}

func seedListing(t *testing.T, db *gorm.DB) *models.Listing {
	listing := &models.Listing{
		Title:         "City Loft",
		Status:        "published",
		IsAvailable:   true,
		PricePerNight: 90,
		MaxGuests:     2,
		MinimumStay:   1,
	}
	assert.NoError(t, db.Create(listing).Error)
	return listing
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindOverlappingHalfOpen(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewBookingRepository(db)
	listing := seedListing(t, db)

	existing := &models.Booking{
		ListingID:    listing.ID,
		UserID:       1,
		CheckInDate:  day(2025, time.June, 1),
		CheckOutDate: day(2025, time.June, 5),
		Status:       models.BookingStatusConfirmed,
	}
	assert.NoError(t, db.Create(existing).Error)

	active := []string{models.BookingStatusPending, models.BookingStatusConfirmed}

	found, err := repo.FindOverlapping(listing.ID, day(2025, time.June, 4), day(2025, time.June, 8), active)
	assert.NoError(t, err)
	assert.Len(t, found, 1)

	// A stay starting on the check-out day does not overlap.
	found, err = repo.FindOverlapping(listing.ID, day(2025, time.June, 5), day(2025, time.June, 8), active)
	assert.NoError(t, err)
	assert.Empty(t, found)

	// A stay ending on the check-in day does not overlap either.
	found, err = repo.FindOverlapping(listing.ID, day(2025, time.May, 28), day(2025, time.June, 1), active)
	assert.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.FindOverlapping(listing.ID, day(2025, time.May, 28), day(2025, time.June, 2), active)
	assert.NoError(t, err)
	assert.Len(t, found, 1)

	// Status filter excludes bookings in other states.
	found, err = repo.FindOverlapping(listing.ID, day(2025, time.June, 1), day(2025, time.June, 5),
		[]string{models.BookingStatusPending})
	assert.NoError(t, err)
	assert.Empty(t, found)
}

func TestInsertRejectsClashingDates(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewBookingRepository(db)
	listing := seedListing(t, db)

	first := &models.Booking{
		ListingID:    listing.ID,
		UserID:       1,
		CheckInDate:  day(2025, time.June, 1),
		CheckOutDate: day(2025, time.June, 5),
		Status:       models.BookingStatusPending,
	}
	assert.NoError(t, repo.Insert(first))

	clashing := &models.Booking{
		ListingID:    listing.ID,
		UserID:       2,
		CheckInDate:  day(2025, time.June, 3),
		CheckOutDate: day(2025, time.June, 7),
		Status:       models.BookingStatusPending,
	}
	err := repo.Insert(clashing)
	assert.ErrorIs(t, err, errs.ErrDatesUnavailable)

	var count int64
	assert.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	backToBack := &models.Booking{
		ListingID:    listing.ID,
		UserID:       2,
		CheckInDate:  day(2025, time.June, 5),
		CheckOutDate: day(2025, time.June, 8),
		Status:       models.BookingStatusPending,
	}
	assert.NoError(t, repo.Insert(backToBack))
}

func TestInsertIgnoresSettledBookings(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewBookingRepository(db)
	listing := seedListing(t, db)

	cancelled := &models.Booking{
		ListingID:    listing.ID,
		UserID:       1,
		CheckInDate:  day(2025, time.June, 1),
		CheckOutDate: day(2025, time.June, 5),
		Status:       models.BookingStatusCancelled,
	}
	assert.NoError(t, db.Create(cancelled).Error)

	booking := &models.Booking{
		ListingID:    listing.ID,
		UserID:       2,
		CheckInDate:  day(2025, time.June, 2),
		CheckOutDate: day(2025, time.June, 6),
		Status:       models.BookingStatusPending,
	}
	assert.NoError(t, repo.Insert(booking))
}

func TestInsertUnknownListing(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewBookingRepository(db)

	booking := &models.Booking{
		ListingID:    uuid.New(),
		UserID:       1,
		CheckInDate:  day(2025, time.June, 1),
		CheckOutDate: day(2025, time.June, 5),
		Status:       models.BookingStatusPending,
	}
	err := repo.Insert(booking)
	assert.ErrorIs(t, err, errs.ErrListingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewBookingRepository(db)
	listing := seedListing(t, db)

	booking := &models.Booking{
		ListingID:    listing.ID,
		UserID:       1,
		CheckInDate:  day(2025, time.June, 1),
		CheckOutDate: day(2025, time.June, 5),
		Status:       models.BookingStatusPending,
	}
	assert.NoError(t, repo.Insert(booking))

	updated, err := repo.UpdateStatus(booking.ID, models.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	reloaded, err := repo.GetByID(booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, reloaded.Status)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewBookingRepository(db)

	_, err := repo.UpdateStatus(uuid.New(), models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, errs.ErrBookingNotFound)
}
