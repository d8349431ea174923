package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/store"
	"gorm.io/gorm"
)

type EventController struct {
	DB *gorm.DB // nil when running without a database
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GetEvents godoc
// @Summary List community events, soonest first
// @Tags events
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /events [get]
func (ec *EventController) GetEvents(c *gin.Context) {
	var events []models.CommunityEvent
	if ec.DB != nil {
		if err := ec.DB.Order("date ASC").Find(&events).Error; err == nil && len(events) > 0 {
			c.JSON(http.StatusOK, StandardResponse{Success: true, Data: events})
			return
		}
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: store.SeedEvents()})
}
