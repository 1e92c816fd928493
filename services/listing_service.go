package services

import (
	"fmt"
	"regexp"
	"strings"

	"travelapp/config"
	"travelapp/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/google/uuid"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug builds a URL-safe slug from a title, transliterating to ASCII first
func MakeSlug(title string) string {
	ascii := unidecode.Unidecode(title)
	slug := strings.ToLower(ascii)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// MakeUniqueSlug appends a short id suffix so listing slugs never collide
func MakeUniqueSlug(title string, id uuid.UUID) string {
	base := MakeSlug(title)
	if base == "" {
		base = "listing"
	}
	return fmt.Sprintf("%s-%s", base, id.String()[:8])
}

// UpdateListingRating recomputes the cached average rating of a listing
// after a review is created or updated.
func UpdateListingRating(listingID uuid.UUID) error {
	var reviews []models.Review
	if err := config.DB.Where("listing_id = ?", listingID).Find(&reviews).Error; err != nil {
		return err
	}

	var totalStars int
	for _, review := range reviews {
		totalStars += review.Rating
	}

	var average float64
	if len(reviews) > 0 {
		average = float64(totalStars) / float64(len(reviews))
	}

	return config.DB.Model(&models.Listing{}).
		Where("id = ?", listingID).
		Update("rating", average).Error
}
