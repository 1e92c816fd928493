package repository

import (
	"errors"

	"travelapp/constants"
	errs "travelapp/errors"
	"travelapp/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingRepository is the read-side collaborator of the booking service
type ListingRepository interface {
	Get(id uuid.UUID) (*models.Listing, error)
	GetIfPublishedAndAvailable(id uuid.UUID) (*models.Listing, error)
}

type GormListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

func (r *GormListingRepository) Get(id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *GormListingRepository) GetIfPublishedAndAvailable(id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.Where("id = ? AND status = ? AND is_available = ?",
		id, constants.ListingStatusPublished, true).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}
