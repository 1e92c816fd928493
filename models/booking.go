package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ListingID       uuid.UUID `json:"listingId" gorm:"type:uuid;index;not null"`
	Listing         Listing   `json:"listing" gorm:"foreignKey:ListingID"`
	UserID          uint      `json:"userId"`
	User            User      `json:"user" gorm:"foreignKey:UserID"`
	CheckInDate     time.Time `json:"checkInDate" gorm:"type:date"`
	CheckOutDate    time.Time `json:"checkOutDate" gorm:"type:date"` // exclusive
	Guests          int       `json:"guests"`
	TotalPrice      float64   `json:"totalPrice"` // computed once at creation
	Status          string    `json:"status" gorm:"default:pending;index"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Nights returns the stay duration in whole days. Check-out is exclusive,
// so a [d, d+1) stay is one night.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
