package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	errs "travelapp/errors"
	"travelapp/response"

	"github.com/gin-gonic/gin"
	validator "github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// parsePagination reads page/limit query params with the defaults used
// across all list endpoints
func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// bindingErrorMessage turns a binding failure into a field-naming message
func bindingErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				return fmt.Sprintf("%s is required.", fieldError.Field())
			case "futuredate":
				return fmt.Sprintf("%s must be in the future.", fieldError.Field())
			case "uuid":
				return fmt.Sprintf("%s must be a valid UUID.", fieldError.Field())
			case "min":
				return fmt.Sprintf("%s must be at least %s.", fieldError.Field(), fieldError.Param())
			case "max":
				return fmt.Sprintf("%s must be at most %s.", fieldError.Field(), fieldError.Param())
			case "oneof":
				return fmt.Sprintf("%s must be one of: %s.", fieldError.Field(), fieldError.Param())
			default:
				return fmt.Sprintf("%s is invalid.", fieldError.Field())
			}
		}
	}
	return "Invalid request payload"
}

// respondWithError maps service and repository errors onto HTTP responses
func respondWithError(c *gin.Context, err error) {
	if appErr := errs.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errs.ErrCodeDateRangeUnavailable:
			response.Conflict(c, appErr.Message)
		default:
			response.BadRequest(c, appErr.Message)
		}
		return
	}

	if errors.Is(err, errs.ErrBookingNotFound) || errors.Is(err, errs.ErrListingNotFound) {
		response.NotFound(c)
		return
	}

	response.ServerError(c)
}
