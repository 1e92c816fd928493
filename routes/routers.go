package routes

import (
	"fmt"

	"travelapp/constants"
	"travelapp/controllers"
	middlewares "travelapp/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.GetProfile)

	v1.GET("/listings", controllers.GetAllListings)
	v1.GET("/listings/search", controllers.SearchListings)
	v1.GET("/listings/:id", controllers.GetListingDetail)
	v1.POST("/listings", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleAdmin), controllers.CreateListing)
	v1.PUT("/listingUpdate", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleAdmin), controllers.UpdateListing)
	v1.PUT("/listingStatus", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleAdmin), controllers.ChangeListingStatus)
	v1.GET("/my-listings", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleAdmin), controllers.MyListings)

	v1.POST("/listings/:id/book", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.BookListing)
	v1.POST("/listings/:id/favorite", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.ToggleFavorite)
	v1.GET("/listings/:id/reviews", controllers.GetListingReviews)

	v1.GET("/bookings", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.CreateBooking)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.GetBookingDetail)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.ChangeBookingStatus)
	v1.GET("/my-bookings", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.MyBookings)

	v1.GET("/reviews", controllers.GetAllReviews)
	v1.POST("/reviews", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.CreateReview)
	v1.GET("/reviews/:id", controllers.GetReviewDetail)
	v1.PUT("/reviewUpdate", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.UpdateReview)

	v1.GET("/my-favorites", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), controllers.MyFavorites)

	v1.GET("/categories", controllers.GetAllCategories)
	v1.POST("/categories", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateCategory)
	v1.GET("/categories/:id", controllers.GetCategoryDetail)
	v1.PUT("/categoryUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateCategory)

	v1.GET("/locations", controllers.GetAllLocations)
	v1.POST("/locations", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateLocation)
	v1.GET("/locations/:id", controllers.GetLocationDetail)
	v1.PUT("/locationUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateLocation)

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Backend notification: new message!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
