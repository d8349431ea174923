package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/stories"
	"github.com/prithvi-path/api-go/utils"
)

type StoryController struct {
	Stories *stories.Service
	Monitor *stories.Monitor
}

func NewStoryController(svc *stories.Service, monitor *stories.Monitor) *StoryController {
	return &StoryController{Stories: svc, Monitor: monitor}
}

// GetUnlockedStories godoc
// @Summary List the stories the current user has unlocked
// @Tags stories
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /stories/unlocked [get]
func (sc *StoryController) GetUnlockedStories(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	unlocked, err := sc.Stories.UnlockedStories(c.Request.Context(), user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching stories"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: unlocked})
}

// UnlockStory godoc
// @Summary Unlock a story for the current user
// @Description Idempotent; a repeat unlock succeeds without awarding points again
// @Tags stories
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} StandardResponse
// @Router /stories/{id}/unlock [post]
func (sc *StoryController) UnlockStory(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	result, err := sc.Stories.UnlockStory(c.Request.Context(), c.Param("id"), user.UserID)
	if err != nil {
		if errors.Is(err, stories.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error unlocking story"})
		return
	}

	// Accepting a pending geofence notification for this story clears it.
	if pending := sc.Monitor.Pending(user.UserID); pending != nil && pending.Story.ID == c.Param("id") {
		sc.Monitor.Dismiss(user.UserID)
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: result})
}

// GetNearbyStory godoc
// @Summary Get the pending story-nearby notification, scanning at the given position
// @Tags stories
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} StandardResponse
// @Router /stories/nearby [get]
func (sc *StoryController) GetNearbyStory(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr == nil && lngErr == nil {
		notification, err := sc.Monitor.ScanProximity(c.Request.Context(), user.UserID, lat, lng)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error scanning for nearby stories"})
			return
		}
		c.JSON(http.StatusOK, StandardResponse{Success: true, Data: notification})
		return
	}

	// Without coordinates, report whatever the background scan surfaced.
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: sc.Monitor.Pending(user.UserID)})
}

// DismissNearbyStory godoc
// @Summary Dismiss the pending story-nearby notification
// @Tags stories
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /stories/nearby [delete]
func (sc *StoryController) DismissNearbyStory(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	sc.Monitor.Dismiss(user.UserID)
	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Notification dismissed"})
}
