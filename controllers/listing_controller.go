package controllers

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"travelapp/config"
	"travelapp/constants"
	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"
	"travelapp/services"
	"travelapp/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

func convertToListingResponse(listing models.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:          listing.ID.String(),
		Title:       listing.Title,
		Slug:        listing.Slug,
		ListingType: listing.ListingType,
		Status:      listing.Status,
		Host: dto.UserInfo{
			ID:     listing.Host.ID,
			Name:   listing.Host.Name,
			Avatar: listing.Host.Avatar,
		},
		Category: dto.CategoryResponse{
			ID:          listing.Category.ID,
			Name:        listing.Category.Name,
			Slug:        listing.Category.Slug,
			Description: listing.Category.Description,
			Image:       listing.Category.Image,
		},
		Location: dto.LocationResponse{
			ID:        listing.Location.ID,
			Name:      listing.Location.Name,
			City:      listing.Location.City,
			State:     listing.Location.State,
			Country:   listing.Location.Country,
			Latitude:  listing.Location.Latitude,
			Longitude: listing.Location.Longitude,
		},
		PricePerNight: listing.PricePerNight,
		Currency:      listing.Currency,
		MaxGuests:     listing.MaxGuests,
		Bedrooms:      listing.Bedrooms,
		Bathrooms:     listing.Bathrooms,
		MainImage:     listing.MainImage,
		ReviewCount:   len(listing.Reviews),
		AverageRating: listing.Rating,
		CreatedAt:     listing.CreatedAt,
	}
}

func convertToListingDetailResponse(listing models.Listing, isFavorited bool) dto.ListingDetailResponse {
	var images []dto.ListingImageResponse
	for _, image := range listing.Images {
		images = append(images, dto.ListingImageResponse{
			ID:       image.ID,
			Image:    image.Image,
			Caption:  image.Caption,
			Position: image.Position,
		})
	}

	var reviews []dto.ReviewResponse
	for _, review := range listing.Reviews {
		reviews = append(reviews, convertToReviewResponse(review))
	}

	return dto.ListingDetailResponse{
		ListingResponse: convertToListingResponse(listing),
		Description:     listing.Description,
		Amenities:       listing.Amenities,
		HouseRules:      listing.HouseRules,
		IsAvailable:     listing.IsAvailable,
		MinimumStay:     listing.MinimumStay,
		MaximumStay:     listing.MaximumStay,
		ViewCount:       listing.ViewCount,
		Images:          images,
		Reviews:         reviews,
		IsFavorited:     isFavorited,
		UpdatedAt:       listing.UpdatedAt,
	}
}

func GetAllListings(c *gin.Context) {
	cacheKey := "listings:all"

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allListings []models.Listing

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allListings); err != nil || len(allListings) == 0 {
		tx := config.DB.
			Preload("Host").Preload("Category").Preload("Location").Preload("Reviews").
			Where("status = ?", constants.ListingStatusPublished)

		if err := tx.Find(&allListings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allListings, 10*time.Minute); err != nil {
			log.Printf("Failed to cache listing list: %v", err)
		}
	}

	page, limit := parsePagination(c)
	cityFilter := strings.ToLower(c.Query("city"))
	typeFilter := c.Query("listingType")
	categoryFilter := c.Query("categoryId")
	maxPrice := c.Query("maxPrice")
	guestsFilter := c.Query("guests")

	filteredListings := make([]models.Listing, 0)
	for _, listing := range allListings {
		if cityFilter != "" && !strings.Contains(strings.ToLower(listing.Location.City), cityFilter) {
			continue
		}
		if typeFilter != "" && listing.ListingType != typeFilter {
			continue
		}
		if categoryFilter != "" && fmt.Sprintf("%d", listing.CategoryID) != categoryFilter {
			continue
		}
		if maxPrice != "" {
			var price float64
			if _, err := fmt.Sscanf(maxPrice, "%f", &price); err == nil && listing.PricePerNight > price {
				continue
			}
		}
		if guestsFilter != "" {
			var guests int
			if _, err := fmt.Sscanf(guestsFilter, "%d", &guests); err == nil && listing.MaxGuests < guests {
				continue
			}
		}
		filteredListings = append(filteredListings, listing)
	}

	totalFiltered := len(filteredListings)

	sort.Slice(filteredListings, func(i, j int) bool {
		return filteredListings[i].CreatedAt.After(filteredListings[j].CreatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredListings = []models.Listing{}
	} else if end > totalFiltered {
		filteredListings = filteredListings[start:]
	} else {
		filteredListings = filteredListings[start:end]
	}

	var listingResponses []dto.ListingResponse
	for _, listing := range filteredListings {
		listingResponses = append(listingResponses, convertToListingResponse(listing))
	}

	response.SuccessWithPagination(c, listingResponses, page, limit, totalFiltered)
}

func GetListingDetail(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Listing ID is not a valid UUID.")
		return
	}

	var listing models.Listing
	if err := config.DB.
		Preload("Host").Preload("Category").Preload("Location").
		Preload("Images").Preload("Reviews").Preload("Reviews.User").
		First(&listing, "id = ?", listingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Best-effort view counter, not part of the response payload decision
	if err := config.DB.Model(&models.Listing{}).Where("id = ?", listingID).
		Update("view_count", listing.ViewCount+1).Error; err != nil {
		log.Printf("Failed to bump view count for listing %s: %v", listingID, err)
	}

	isFavorited := false
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if userID, _, err := services.GetUserIDFromToken(tokenString); err == nil {
			var favorite models.Favorite
			if err := config.DB.Where("user_id = ? AND listing_id = ?", userID, listingID).
				First(&favorite).Error; err == nil {
				isFavorited = true
			}
		}
	}

	response.Success(c, convertToListingDetailResponse(listing, isFavorited))
}

func CreateListing(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var request dto.CreateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	var category models.Category
	if err := config.DB.Where("id = ? AND is_active = ?", request.CategoryID, true).
		First(&category).Error; err != nil {
		response.BadRequest(c, "Invalid category ID or category is not active.")
		return
	}

	var location models.Location
	if err := config.DB.First(&location, request.LocationID).Error; err != nil {
		response.BadRequest(c, "Invalid location ID.")
		return
	}

	status := request.Status
	if status == "" {
		status = constants.ListingStatusDraft
	}
	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}
	minimumStay := request.MinimumStay
	if minimumStay == 0 {
		minimumStay = 1
	}
	isAvailable := true
	if request.IsAvailable != nil {
		isAvailable = *request.IsAvailable
	}

	listing := models.Listing{
		ID:            uuid.New(),
		HostID:        currentUserID,
		CategoryID:    category.ID,
		LocationID:    location.ID,
		Title:         request.Title,
		Description:   request.Description,
		ListingType:   request.ListingType,
		Status:        status,
		PricePerNight: request.PricePerNight,
		Currency:      currency,
		MaxGuests:     request.MaxGuests,
		Bedrooms:      request.Bedrooms,
		Bathrooms:     request.Bathrooms,
		Amenities:     request.Amenities,
		HouseRules:    request.HouseRules,
		IsAvailable:   isAvailable,
		MinimumStay:   minimumStay,
		MaximumStay:   request.MaximumStay,
		MainImage:     request.MainImage,
	}
	listing.Slug = services.MakeUniqueSlug(listing.Title, listing.ID)

	if err := validator.ValidateListing(&listing); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&listing).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingCaches()

	response.Created(c, gin.H{"id": listing.ID.String(), "slug": listing.Slug})
}

func UpdateListing(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var request dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	listingID, err := uuid.Parse(request.ID)
	if err != nil {
		response.BadRequest(c, "Listing ID is not a valid UUID.")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if listing.HostID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	var category models.Category
	if err := config.DB.Where("id = ? AND is_active = ?", request.CategoryID, true).
		First(&category).Error; err != nil {
		response.BadRequest(c, "Invalid category ID or category is not active.")
		return
	}

	var location models.Location
	if err := config.DB.First(&location, request.LocationID).Error; err != nil {
		response.BadRequest(c, "Invalid location ID.")
		return
	}

	listing.CategoryID = category.ID
	listing.LocationID = location.ID
	listing.Title = request.Title
	listing.Description = request.Description
	listing.ListingType = request.ListingType
	if request.Status != "" {
		listing.Status = request.Status
	}
	listing.PricePerNight = request.PricePerNight
	if request.Currency != "" {
		listing.Currency = request.Currency
	}
	listing.MaxGuests = request.MaxGuests
	listing.Bedrooms = request.Bedrooms
	listing.Bathrooms = request.Bathrooms
	listing.Amenities = request.Amenities
	listing.HouseRules = request.HouseRules
	if request.IsAvailable != nil {
		listing.IsAvailable = *request.IsAvailable
	}
	if request.MinimumStay > 0 {
		listing.MinimumStay = request.MinimumStay
	}
	listing.MaximumStay = request.MaximumStay
	if request.MainImage != "" {
		listing.MainImage = request.MainImage
	}

	if err := validator.ValidateListing(&listing); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&listing).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingCaches()

	response.Success(c, gin.H{"id": listing.ID.String()})
}

func ChangeListingStatus(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var request dto.ChangeListingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	listingID, err := uuid.Parse(request.ID)
	if err != nil {
		response.BadRequest(c, "Listing ID is not a valid UUID.")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if listing.HostID != currentUserID && currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Model(&listing).Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingCaches()

	response.Success(c, gin.H{"id": listing.ID.String(), "status": request.Status})
}

func MyListings(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	page, limit := parsePagination(c)

	var total int64
	if err := config.DB.Model(&models.Listing{}).Where("host_id = ?", currentUserID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var listings []models.Listing
	if err := config.DB.
		Preload("Host").Preload("Category").Preload("Location").Preload("Reviews").
		Where("host_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&listings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var listingResponses []dto.ListingResponse
	for _, listing := range listings {
		listingResponses = append(listingResponses, convertToListingResponse(listing))
	}

	response.SuccessWithPagination(c, listingResponses, page, limit, int(total))
}

// createMatcher builds a fuzzy matcher over a keyword list
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func normalizeSearchTerm(term string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(term)))
}

func titleSimilarity(query, title string) int {
	if strings.Contains(title, query) {
		return 3
	}
	distance := levenshtein.DistanceForStrings([]rune(query), []rune(title), levenshtein.DefaultOptions)
	if distance <= len(query)/2 {
		return 2
	}
	return 0
}

func searchScore(query string, listing models.Listing, cmCity, cmCountry *closestmatch.ClosestMatch) int {
	score := titleSimilarity(query, normalizeSearchTerm(listing.Title))

	city := normalizeSearchTerm(listing.Location.City)
	if city != "" && cmCity != nil && normalizeSearchTerm(cmCity.Closest(query)) == city {
		score += 2
	}
	country := normalizeSearchTerm(listing.Location.Country)
	if country != "" && cmCountry != nil && normalizeSearchTerm(cmCountry.Closest(query)) == country {
		score++
	}

	return score
}

func SearchListings(c *gin.Context) {
	query := normalizeSearchTerm(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Search query is required.")
		return
	}

	var listings []models.Listing
	if err := config.DB.
		Preload("Host").Preload("Category").Preload("Location").Preload("Reviews").
		Where("status = ?", constants.ListingStatusPublished).
		Find(&listings).Error; err != nil {
		response.ServerError(c)
		return
	}

	citySet := make(map[string]struct{})
	countrySet := make(map[string]struct{})
	for _, listing := range listings {
		if city := listing.Location.City; city != "" {
			citySet[city] = struct{}{}
		}
		if country := listing.Location.Country; country != "" {
			countrySet[country] = struct{}{}
		}
	}

	var cmCity, cmCountry *closestmatch.ClosestMatch
	if len(citySet) > 0 {
		cities := make([]string, 0, len(citySet))
		for city := range citySet {
			cities = append(cities, city)
		}
		cmCity = createMatcher(cities)
	}
	if len(countrySet) > 0 {
		countries := make([]string, 0, len(countrySet))
		for country := range countrySet {
			countries = append(countries, country)
		}
		cmCountry = createMatcher(countries)
	}

	type scoredListing struct {
		listing models.Listing
		score   int
	}
	var matches []scoredListing
	for _, listing := range listings {
		if score := searchScore(query, listing, cmCity, cmCountry); score > 0 {
			matches = append(matches, scoredListing{listing: listing, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	page, limit := parsePagination(c)
	total := len(matches)

	start := page * limit
	end := start + limit
	if start >= total {
		matches = []scoredListing{}
	} else if end > total {
		matches = matches[start:]
	} else {
		matches = matches[start:end]
	}

	var listingResponses []dto.ListingResponse
	for _, match := range matches {
		listingResponses = append(listingResponses, convertToListingResponse(match.listing))
	}

	response.SuccessWithPagination(c, listingResponses, page, limit, total)
}

// invalidateListingCaches drops the cached listing lists after a write
func invalidateListingCaches() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "listings:all")
	_ = services.DeleteByPattern(config.Ctx, rdb, "reviews:*")
}
