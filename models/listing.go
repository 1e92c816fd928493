package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Listing struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	HostID        uint           `json:"hostId"`
	Host          User           `json:"host" gorm:"foreignKey:HostID"`
	CategoryID    uint           `json:"categoryId"`
	Category      Category       `json:"category" gorm:"foreignKey:CategoryID"`
	LocationID    uint           `json:"locationId"`
	Location      Location       `json:"location" gorm:"foreignKey:LocationID"`
	Title         string         `json:"title" gorm:"not null"`
	Slug          string         `json:"slug" gorm:"index"`
	Description   string         `json:"description"`
	ListingType   string         `json:"listingType"` // apartment, house, villa, room ...
	Status        string         `json:"status" gorm:"default:draft"`
	PricePerNight float64        `json:"pricePerNight"`
	Currency      string         `json:"currency" gorm:"default:USD"`
	MaxGuests     int            `json:"maxGuests"`
	Bedrooms      int            `json:"bedrooms"`
	Bathrooms     int            `json:"bathrooms"`
	Amenities     pq.StringArray `json:"amenities" gorm:"type:text[]"`
	HouseRules    string         `json:"houseRules"`
	IsAvailable   bool           `json:"isAvailable" gorm:"default:true"`
	MinimumStay   int            `json:"minimumStay" gorm:"default:1"` // nights
	MaximumStay   *int           `json:"maximumStay"`                  // nights, nil = unbounded
	MainImage     string         `json:"mainImage"`
	Rating        float64        `json:"rating" gorm:"default:0"` // cached review average
	ViewCount     int            `json:"viewCount" gorm:"default:0"`
	Images        []ListingImage `json:"images" gorm:"foreignKey:ListingID"`
	Reviews       []Review       `json:"reviews" gorm:"foreignKey:ListingID"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type ListingImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ListingID uuid.UUID `json:"listingId" gorm:"type:uuid;index"`
	Image     string    `json:"image"`
	Caption   string    `json:"caption"`
	Position  int       `json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
