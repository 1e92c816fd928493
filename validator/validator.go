package validator

import (
	"regexp"
	"time"

	errs "travelapp/errors"
	"travelapp/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterCustomValidations installs binding-level validations used by the
// request DTOs. "futuredate" accepts a YYYY-MM-DD string strictly after today.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return false
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return parsed.After(today)
	})
}

// ValidateUser checks a user before registration
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errs.NewAppError(errs.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errs.NewAppError(errs.ErrCodeInvalidEmail, "Email is not valid", nil)
	}

	if user.Password == "" {
		return errs.NewAppError(errs.ErrCodeRequiredField, "Password is required", nil)
	}

	if len(user.Password) < 6 {
		return errs.NewAppError(errs.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errs.NewAppError(errs.ErrCodeInvalidRole, "Role is not valid", nil)
	}

	return nil
}

// ValidateListing checks a listing before create or update
func ValidateListing(listing *models.Listing) error {
	if listing.Title == "" {
		return errs.NewAppError(errs.ErrCodeRequiredField, "Title is required", nil)
	}

	if listing.PricePerNight <= 0 {
		return errs.NewAppError(errs.ErrCodeValidation, "Price per night must be greater than 0", nil)
	}

	if listing.MaxGuests <= 0 {
		return errs.NewAppError(errs.ErrCodeValidation, "Maximum guests must be greater than 0", nil)
	}

	if listing.MinimumStay < 1 {
		return errs.NewAppError(errs.ErrCodeValidation, "Minimum stay must be at least 1 night", nil)
	}

	if listing.MaximumStay != nil && *listing.MaximumStay < listing.MinimumStay {
		return errs.NewAppError(errs.ErrCodeValidation, "Maximum stay cannot be less than minimum stay", nil)
	}

	return nil
}

// ValidateReview checks a review before create or update
func ValidateReview(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return errs.NewAppError(errs.ErrCodeValidation, "Rating must be between 1 and 5", nil)
	}

	if review.Content == "" {
		return errs.NewAppError(errs.ErrCodeRequiredField, "Content is required", nil)
	}

	return nil
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
