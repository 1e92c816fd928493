package validator

import (
	"testing"

	errs "travelapp/errors"
	"travelapp/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestValidateUser(t *testing.T) {
	user := &models.User{Email: "host@example.com", Password: "secret12", Role: 1}
	assert.NoError(t, ValidateUser(user))

	user = &models.User{Password: "secret12"}
	assert.True(t, errs.HasCode(ValidateUser(user), errs.ErrCodeRequiredField))

	user = &models.User{Email: "not-an-email", Password: "secret12"}
	assert.True(t, errs.HasCode(ValidateUser(user), errs.ErrCodeInvalidEmail))

	user = &models.User{Email: "host@example.com", Password: "short"}
	assert.True(t, errs.HasCode(ValidateUser(user), errs.ErrCodeValidation))

	user = &models.User{Email: "host@example.com", Password: "secret12", Role: 9}
	assert.True(t, errs.HasCode(ValidateUser(user), errs.ErrCodeInvalidRole))
}

func TestValidateListing(t *testing.T) {
	listing := &models.Listing{
		Title:         "Beach House",
		PricePerNight: 120,
		MaxGuests:     4,
		MinimumStay:   2,
		MaximumStay:   intPtr(14),
	}
	assert.NoError(t, ValidateListing(listing))

	listing.Title = ""
	assert.True(t, errs.HasCode(ValidateListing(listing), errs.ErrCodeRequiredField))
	listing.Title = "Beach House"

	listing.PricePerNight = 0
	assert.True(t, errs.HasCode(ValidateListing(listing), errs.ErrCodeValidation))
	listing.PricePerNight = 120

	listing.MaxGuests = 0
	assert.True(t, errs.HasCode(ValidateListing(listing), errs.ErrCodeValidation))
	listing.MaxGuests = 4

	listing.MaximumStay = intPtr(1)
	assert.True(t, errs.HasCode(ValidateListing(listing), errs.ErrCodeValidation))
}

func TestValidateReview(t *testing.T) {
	review := &models.Review{Rating: 5, Content: "Great stay"}
	assert.NoError(t, ValidateReview(review))

	review = &models.Review{Rating: 0, Content: "Great stay"}
	assert.True(t, errs.HasCode(ValidateReview(review), errs.ErrCodeValidation))

	review = &models.Review{Rating: 6, Content: "Great stay"}
	assert.True(t, errs.HasCode(ValidateReview(review), errs.ErrCodeValidation))

	review = &models.Review{Rating: 4}
	assert.True(t, errs.HasCode(ValidateReview(review), errs.ErrCodeRequiredField))
}
