package controllers

import (
	"travelapp/config"
	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ToggleFavorite adds the listing to the user's favorites, or removes it if
// it is already there
func ToggleFavorite(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Listing ID is not a valid UUID.")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var favorite models.Favorite
	if err := config.DB.Where("user_id = ? AND listing_id = ?", currentUserID, listingID).
		First(&favorite).Error; err == nil {
		if err := config.DB.Delete(&favorite).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, gin.H{"favorited": false})
		return
	}

	favorite = models.Favorite{
		UserID:    currentUserID,
		ListingID: listingID,
	}
	if err := config.DB.Create(&favorite).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"favorited": true})
}

func MyFavorites(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	page, limit := parsePagination(c)

	var total int64
	if err := config.DB.Model(&models.Favorite{}).Where("user_id = ?", currentUserID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var favorites []models.Favorite
	if err := config.DB.
		Preload("Listing").Preload("Listing.Host").Preload("Listing.Category").
		Preload("Listing.Location").Preload("Listing.Reviews").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&favorites).Error; err != nil {
		response.ServerError(c)
		return
	}

	var listingResponses []dto.ListingResponse
	for _, favorite := range favorites {
		listingResponses = append(listingResponses, convertToListingResponse(favorite.Listing))
	}

	response.SuccessWithPagination(c, listingResponses, page, limit, int(total))
}
