package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/controllers"
)

func SetupStoryRoutes(protected *gin.RouterGroup, storyController *controllers.StoryController) {
	storiesGroup := protected.Group("/stories")
	{
		storiesGroup.GET("/unlocked", storyController.GetUnlockedStories)
		storiesGroup.POST("/:id/unlock", storyController.UnlockStory)
		storiesGroup.GET("/nearby", storyController.GetNearbyStory)
		storiesGroup.DELETE("/nearby", storyController.DismissNearbyStory)
	}
}
