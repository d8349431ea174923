package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/controllers"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController, locationController *controllers.LocationController, leaderboardController *controllers.LeaderboardController, eventController *controllers.EventController) {
	user := protected.Group("/user/:userId")
	{
		user.GET("/profile", userController.GetUserProfile)
		user.POST("/steps", userController.SimulateSteps)
		user.GET("/activity", userController.GetRecentActivity)
		user.GET("/locations", locationController.GetUserLocations)
	}

	protected.GET("/leaderboard", leaderboardController.GetLeaderboard)
	protected.GET("/events", eventController.GetEvents)
}
