package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/controllers"
)

func SetupLocationRoutes(protected *gin.RouterGroup, locationController *controllers.LocationController, checkinController *controllers.CheckinController, reviewController *controllers.ReviewController) {
	locations := protected.Group("/locations")
	{
		locations.GET("", locationController.GetLocations)
		locations.GET("/:id", locationController.GetLocation)
		locations.POST("/:id/checkin", checkinController.Checkin)
		locations.GET("/:id/reviews", reviewController.GetReviews)
		locations.POST("/:id/reviews", reviewController.CreateReview)
	}
}
