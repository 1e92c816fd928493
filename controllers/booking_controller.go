package controllers

import (
	"fmt"
	"log"
	"sort"
	"time"

	"travelapp/config"
	"travelapp/constants"
	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"
	"travelapp/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:      booking.ID.String(),
		Listing: convertToListingResponse(booking.Listing),
		User: dto.UserInfo{
			ID:     booking.User.ID,
			Name:   booking.User.Name,
			Email:  booking.User.Email,
			Avatar: booking.User.Avatar,
		},
		CheckInDate:     booking.CheckInDate.Format(dateLayout),
		CheckOutDate:    booking.CheckOutDate.Format(dateLayout),
		Guests:          booking.Guests,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		SpecialRequests: booking.SpecialRequests,
		Duration:        booking.Nights(),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

func createBookingFromRequest(c *gin.Context, listingID uuid.UUID, checkInStr, checkOutStr string, guests int, specialRequests string) {
	currentUserID := c.GetUint("userID")

	checkIn, err := parseDate(checkInStr)
	if err != nil {
		response.BadRequest(c, "Check-in date is not a valid date.")
		return
	}
	checkOut, err := parseDate(checkOutStr)
	if err != nil {
		response.BadRequest(c, "Check-out date is not a valid date.")
		return
	}

	svc := services.NewBookingService(config.DB)
	booking, err := svc.CreateBooking(services.AdmissionRequest{
		ListingID:       listingID,
		UserID:          currentUserID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          guests,
		SpecialRequests: specialRequests,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	invalidateBookingCaches(booking.ListingID)

	var created models.Booking
	if err := config.DB.
		Preload("Listing").Preload("Listing.Category").Preload("Listing.Location").Preload("Listing.Host").
		Preload("User").
		First(&created, "id = ?", booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, convertToBookingResponse(created))
}

func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	listingID, err := uuid.Parse(request.ListingID)
	if err != nil {
		response.BadRequest(c, "Listing ID is not a valid UUID.")
		return
	}

	createBookingFromRequest(c, listingID, request.CheckInDate, request.CheckOutDate,
		request.Guests, request.SpecialRequests)
}

// BookListing handles POST /listings/:id/book, the path-scoped variant
func BookListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Listing ID is not a valid UUID.")
		return
	}

	var request dto.BookListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	createBookingFromRequest(c, listingID, request.CheckInDate, request.CheckOutDate,
		request.Guests, request.SpecialRequests)
}

func GetBookings(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	cacheKey := fmt.Sprintf("bookings:all:user:%d", currentUserID)
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allBookings []models.Booking

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		baseTx := config.DB.Model(&models.Booking{}).
			Preload("Listing").Preload("Listing.Category").Preload("Listing.Location").Preload("Listing.Host").
			Preload("User")

		switch currentUserRole {
		case constants.RoleHost:
			// Hosts see bookings on their own listings
			baseTx = baseTx.Where("bookings.listing_id IN (?)",
				config.DB.Model(&models.Listing{}).Select("id").Where("host_id = ?", currentUserID))
		case constants.RoleAdmin:
			// Admins see everything
		default:
			baseTx = baseTx.Where("bookings.user_id = ?", currentUserID)
		}

		if err := baseTx.Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Failed to cache booking list: %v", err)
		}
	}

	page, limit := parsePagination(c)
	statusFilter := c.Query("status")
	listingFilter := c.Query("listingId")

	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if statusFilter != "" && booking.Status != statusFilter {
			continue
		}
		if listingFilter != "" && booking.ListingID.String() != listingFilter {
			continue
		}
		filteredBookings = append(filteredBookings, booking)
	}

	totalFiltered := len(filteredBookings)

	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].UpdatedAt.After(filteredBookings[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredBookings = []models.Booking{}
	} else if end > totalFiltered {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	var bookingResponses []dto.BookingResponse
	for _, booking := range filteredBookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, totalFiltered)
}

func GetBookingDetail(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Booking ID is not a valid UUID.")
		return
	}

	var booking models.Booking
	if err := config.DB.
		Preload("Listing").Preload("Listing.Category").Preload("Listing.Location").Preload("Listing.Host").
		Preload("User").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole != constants.RoleAdmin &&
		booking.UserID != currentUserID &&
		booking.Listing.HostID != currentUserID {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

func ChangeBookingStatus(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var request dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	bookingID, err := uuid.Parse(request.ID)
	if err != nil {
		response.BadRequest(c, "Booking ID is not a valid UUID.")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Listing").First(&booking, "id = ?", bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Guests may only cancel their own bookings; hosts manage bookings on
	// their own listings.
	switch currentUserRole {
	case constants.RoleAdmin:
	case constants.RoleHost:
		if booking.Listing.HostID != currentUserID {
			if booking.UserID != currentUserID || request.Status != constants.BookingStatusCancelled {
				response.Forbidden(c)
				return
			}
		}
	default:
		if booking.UserID != currentUserID || request.Status != constants.BookingStatusCancelled {
			response.Forbidden(c)
			return
		}
	}

	svc := services.NewBookingService(config.DB)
	updated, err := svc.ChangeStatus(bookingID, request.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	invalidateBookingCaches(booking.ListingID)

	response.Success(c, gin.H{
		"id":     updated.ID.String(),
		"status": updated.Status,
	})
}

func MyBookings(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	page, limit := parsePagination(c)

	var total int64
	if err := config.DB.Model(&models.Booking{}).Where("user_id = ?", currentUserID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Preload("Listing").Preload("Listing.Category").Preload("Listing.Location").Preload("Listing.Host").
		Preload("User").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookingResponses []dto.BookingResponse
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(total))
}

// invalidateBookingCaches drops the cached booking lists after a write
func invalidateBookingCaches(listingID uuid.UUID) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteByPattern(config.Ctx, rdb, "bookings:all:*")
	_ = services.DeleteFromRedis(config.Ctx, rdb, fmt.Sprintf("listings:detail:%s", listingID))
}
