package controllers

import (
	"fmt"
	"log"
	"time"

	"travelapp/config"
	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"
	"travelapp/services"
	"travelapp/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         review.ID,
		ListingID:  review.ListingID.String(),
		Rating:     review.Rating,
		Title:      review.Title,
		Content:    review.Content,
		IsVerified: review.IsVerified,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
		User: dto.UserInfo{
			ID:     review.User.ID,
			Name:   review.User.Name,
			Avatar: review.User.Avatar,
		},
	}
}

func GetAllReviews(c *gin.Context) {
	listingIDFilter := c.DefaultQuery("listingId", "")

	cacheKey := "reviews:all"
	if listingIDFilter != "" {
		cacheKey = fmt.Sprintf("reviews:listing:%s", listingIDFilter)
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var reviewResponses []dto.ReviewResponse

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &reviewResponses); err == nil && len(reviewResponses) > 0 {
		response.Success(c, reviewResponses)
		return
	}

	tx := config.DB.Preload("User")
	if listingIDFilter != "" {
		if listingID, err := uuid.Parse(listingIDFilter); err == nil {
			tx = tx.Where("listing_id = ?", listingID)
		}
	}

	var reviews []models.Review
	if err := tx.Order("created_at DESC").Limit(20).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	if err := services.SetToRedis(config.Ctx, rdb, cacheKey, reviewResponses, 10*time.Minute); err != nil {
		log.Printf("Failed to cache review list: %v", err)
	}

	response.Success(c, reviewResponses)
}

// GetListingReviews handles GET /listings/:id/reviews
func GetListingReviews(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Listing ID is not a valid UUID.")
		return
	}

	page, limit := parsePagination(c)

	var total int64
	if err := config.DB.Model(&models.Review{}).Where("listing_id = ?", listingID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("User").
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reviewResponses []dto.ReviewResponse
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	response.SuccessWithPagination(c, reviewResponses, page, limit, int(total))
}

func CreateReview(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	listingID, err := uuid.Parse(request.ListingID)
	if err != nil {
		response.BadRequest(c, "Listing ID is not a valid UUID.")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var existingReview models.Review
	if err := config.DB.Where("user_id = ? AND listing_id = ?", currentUserID, listingID).
		First(&existingReview).Error; err == nil {
		response.Error(c, 0, "You have already reviewed this listing")
		return
	}

	// Reviews from guests with a completed stay are marked verified
	var completedStays int64
	config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND listing_id = ? AND status = ?",
			currentUserID, listingID, models.BookingStatusCompleted).
		Count(&completedStays)

	review := models.Review{
		ListingID:  listingID,
		UserID:     currentUserID,
		Rating:     request.Rating,
		Title:      request.Title,
		Content:    request.Content,
		IsVerified: completedStays > 0,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.UpdateListingRating(listingID); err != nil {
		response.ServerError(c)
		return
	}

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteByPattern(config.Ctx, rdb, "reviews:*")
		_ = services.DeleteFromRedis(config.Ctx, rdb, "listings:all")
	}

	response.Created(c, review)
}

func GetReviewDetail(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := config.DB.Preload("User").First(&review, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToReviewResponse(review))
}

func UpdateReview(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var request dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	var review models.Review
	if err := config.DB.First(&review, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if review.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	review.Rating = request.Rating
	review.Title = request.Title
	review.Content = request.Content

	if err := validator.ValidateReview(&review); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.UpdateListingRating(review.ListingID); err != nil {
		response.ServerError(c)
		return
	}

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteByPattern(config.Ctx, rdb, "reviews:*")
	}

	response.Success(c, review)
}
