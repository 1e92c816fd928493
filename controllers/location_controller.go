package controllers

import (
	"strings"

	"travelapp/config"
	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"

	"github.com/gin-gonic/gin"
)

func GetAllLocations(c *gin.Context) {
	tx := config.DB.Order("country, city")

	if countryFilter := c.Query("country"); countryFilter != "" {
		tx = tx.Where("LOWER(country) LIKE ?", "%"+strings.ToLower(countryFilter)+"%")
	}

	var locations []models.Location
	if err := tx.Find(&locations).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, locations)
}

func CreateLocation(c *gin.Context) {
	var request dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	location := models.Location{
		Name:      request.Name,
		City:      request.City,
		State:     request.State,
		Country:   request.Country,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	}

	if err := config.DB.Create(&location).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, location)
}

func GetLocationDetail(c *gin.Context) {
	id := c.Param("id")

	var location models.Location
	if err := config.DB.First(&location, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, location)
}

func UpdateLocation(c *gin.Context) {
	var request dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	var location models.Location
	if err := config.DB.First(&location, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	location.Name = request.Name
	location.City = request.City
	location.State = request.State
	location.Country = request.Country
	location.Latitude = request.Latitude
	location.Longitude = request.Longitude

	if err := config.DB.Save(&location).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingCaches()

	response.Success(c, location)
}
