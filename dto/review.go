package dto

import "time"

type ReviewResponse struct {
	ID         uint      `json:"id"`
	ListingID  string    `json:"listingId"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	User       UserInfo  `json:"user"`
}

type CreateReviewRequest struct {
	ListingID string `json:"listingId" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title"`
	Content   string `json:"content" binding:"required"`
}

type UpdateReviewRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}
