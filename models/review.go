package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ListingID  uuid.UUID `json:"listingId" gorm:"type:uuid;index;uniqueIndex:idx_review_user_listing"`
	UserID     uint      `json:"userId" gorm:"uniqueIndex:idx_review_user_listing"`
	User       User      `json:"user" gorm:"foreignKey:UserID"`
	Rating     int       `json:"rating"` // 1..5
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsVerified bool      `json:"isVerified" gorm:"default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
