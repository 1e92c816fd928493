package repository

import (
	"errors"
	"time"

	errs "travelapp/errors"
	"travelapp/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository is the read/write collaborator of the booking service
type BookingRepository interface {
	Insert(booking *models.Booking) error
	GetByID(id uuid.UUID) (*models.Booking, error)
	FindOverlapping(listingID uuid.UUID, checkIn, checkOut time.Time, statuses []string) ([]models.Booking, error)
	UpdateStatus(id uuid.UUID, status string) (*models.Booking, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Insert persists a new booking. The overlap check is repeated inside the
// transaction under a listing-scoped row lock, so two concurrent requests for
// the same listing and clashing dates cannot both commit.
func (r *GormBookingRepository) Insert(booking *models.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		listingTx := tx
		// SQLite has no SELECT ... FOR UPDATE; its transactions serialize on
		// the database lock instead.
		if tx.Dialector.Name() == "postgres" {
			listingTx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var listing models.Listing
		if err := listingTx.Where("id = ?", booking.ListingID).First(&listing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrListingNotFound
			}
			return err
		}

		var count int64
		err := tx.Model(&models.Booking{}).
			Where("listing_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
				booking.ListingID,
				[]string{models.BookingStatusPending, models.BookingStatusConfirmed},
				booking.CheckOutDate, booking.CheckInDate).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return errs.ErrDatesUnavailable
		}

		return tx.Create(booking).Error
	})
}

func (r *GormBookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// FindOverlapping returns bookings of the listing in any of the given statuses
// whose half-open date range [check_in, check_out) intersects the requested one.
func (r *GormBookingRepository) FindOverlapping(listingID uuid.UUID, checkIn, checkOut time.Time, statuses []string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("listing_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			listingID, statuses, checkOut, checkIn).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) UpdateStatus(id uuid.UUID, status string) (*models.Booking, error) {
	result := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrBookingNotFound
	}
	return r.GetByID(id)
}
