package controllers

import (
	"travelapp/config"
	"travelapp/dto"
	"travelapp/models"
	"travelapp/response"
	"travelapp/services"

	"github.com/gin-gonic/gin"
)

func GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("is_active = ?", true).Order("name").Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, categories)
}

func CreateCategory(c *gin.Context) {
	var request dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	category := models.Category{
		Name:        request.Name,
		Slug:        services.MakeSlug(request.Name),
		Description: request.Description,
		Image:       request.Image,
		IsActive:    true,
	}

	var existing models.Category
	if err := config.DB.Where("name = ? OR slug = ?", category.Name, category.Slug).
		First(&existing).Error; err == nil {
		response.Error(c, 0, "Category already exists")
		return
	}

	if err := config.DB.Create(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, category)
}

func GetCategoryDetail(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, category)
}

func UpdateCategory(c *gin.Context) {
	var request dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	var category models.Category
	if err := config.DB.First(&category, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	category.Name = request.Name
	category.Slug = services.MakeSlug(request.Name)
	category.Description = request.Description
	category.Image = request.Image
	if request.IsActive != nil {
		category.IsActive = *request.IsActive
	}

	if err := config.DB.Save(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingCaches()

	response.Success(c, category)
}
