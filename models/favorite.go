package models

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_favorite_user_listing"`
	ListingID uuid.UUID `json:"listingId" gorm:"type:uuid;uniqueIndex:idx_favorite_user_listing"`
	Listing   Listing   `json:"listing" gorm:"foreignKey:ListingID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
