package dto

import "time"

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type LocationResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListingImageResponse struct {
	ID       uint   `json:"id"`
	Image    string `json:"image"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

// ListingResponse is the lightweight shape used in list endpoints
type ListingResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	ListingType   string           `json:"listingType"`
	Status        string           `json:"status"`
	Host          UserInfo         `json:"host"`
	Category      CategoryResponse `json:"category"`
	Location      LocationResponse `json:"location"`
	PricePerNight float64          `json:"pricePerNight"`
	Currency      string           `json:"currency"`
	MaxGuests     int              `json:"maxGuests"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms"`
	MainImage     string           `json:"mainImage"`
	ReviewCount   int              `json:"reviewCount"`
	AverageRating float64          `json:"averageRating"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ListingDetailResponse is the full shape used by the detail endpoint
type ListingDetailResponse struct {
	ListingResponse
	Description string                 `json:"description"`
	Amenities   []string               `json:"amenities"`
	HouseRules  string                 `json:"houseRules"`
	IsAvailable bool                   `json:"isAvailable"`
	MinimumStay int                    `json:"minimumStay"`
	MaximumStay *int                   `json:"maximumStay"`
	ViewCount   int                    `json:"viewCount"`
	Images      []ListingImageResponse `json:"images"`
	Reviews     []ReviewResponse       `json:"reviews"`
	IsFavorited bool                   `json:"isFavorited"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type CreateListingRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	ListingType   string   `json:"listingType"`
	Status        string   `json:"status"`
	CategoryID    uint     `json:"categoryId" binding:"required"`
	LocationID    uint     `json:"locationId" binding:"required"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	Currency      string   `json:"currency"`
	MaxGuests     int      `json:"maxGuests" binding:"required,gt=0"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Amenities     []string `json:"amenities"`
	HouseRules    string   `json:"houseRules"`
	IsAvailable   *bool    `json:"isAvailable"`
	MinimumStay   int      `json:"minimumStay"`
	MaximumStay   *int     `json:"maximumStay"`
	MainImage     string   `json:"mainImage"`
}

type UpdateListingRequest struct {
	ID string `json:"id" binding:"required,uuid"`
	CreateListingRequest
}

type ChangeListingStatusRequest struct {
	ID     string `json:"id" binding:"required,uuid"`
	Status string `json:"status" binding:"required,oneof=draft published archived"`
}
