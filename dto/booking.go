package dto

import "time"

type CreateBookingRequest struct {
	ListingID       string `json:"listingId" binding:"required,uuid"`
	CheckInDate     string `json:"checkInDate" binding:"required,futuredate"`
	CheckOutDate    string `json:"checkOutDate" binding:"required,futuredate"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// BookListingRequest is the body of POST /listings/:id/book, where the
// listing id comes from the path
type BookListingRequest struct {
	CheckInDate     string `json:"checkInDate" binding:"required,futuredate"`
	CheckOutDate    string `json:"checkOutDate" binding:"required,futuredate"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

type ChangeBookingStatusRequest struct {
	ID     string `json:"id" binding:"required,uuid"`
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	Listing         ListingResponse `json:"listing"`
	User            UserInfo        `json:"user"`
	CheckInDate     string          `json:"checkInDate"`
	CheckOutDate    string          `json:"checkOutDate"`
	Guests          int             `json:"guests"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          string          `json:"status"`
	SpecialRequests string          `json:"specialRequests"`
	Duration        int             `json:"duration"` // nights
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
