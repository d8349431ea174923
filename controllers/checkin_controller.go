package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/stories"
	"github.com/prithvi-path/api-go/store"
	"github.com/prithvi-path/api-go/types"
)

type CheckinController struct {
	Store   store.LocationStore
	Ledgers *gamification.Registry
	Stories *stories.Service
}

type CheckinRequest struct {
	UserID    string `json:"userId" binding:"required"`
	QRCode    string `json:"qrCode" binding:"required"`
	Action    string `json:"action" binding:"required"`
	Timestamp string `json:"timestamp"`
}

func NewCheckinController(st store.LocationStore, ledgers *gamification.Registry, storySvc *stories.Service) *CheckinController {
	return &CheckinController{Store: st, Ledgers: ledgers, Stories: storySvc}
}

// Checkin godoc
// @Summary Check in at an eco-location with a scanned QR code
// @Description Validates the code and action, applies regional bonuses and awards eco-points
// @Tags checkins
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param checkin body CheckinRequest true "Check-in request"
// @Success 200 {object} map[string]interface{}
// @Router /locations/{id}/checkin [post]
func (cc *CheckinController) Checkin(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: userId, qrCode, and action are required",
		})
		return
	}

	location, err := cc.Store.FindLocationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Eco-location not found in Himachal Pradesh network",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to process check-in. Please try again.",
		})
		return
	}

	award, err := gamification.EvaluateCheckin(location, req.QRCode, types.ActionType(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, gamification.ErrCodeMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "QR code mismatch. Please scan the correct QR code at this eco-location.",
			})
		case errors.Is(err, gamification.ErrActionUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Action '%s' not available at this location", req.Action),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to process check-in. Please try again.",
			})
		}
		return
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			timestamp = parsed
		}
	}

	rec := models.CheckIn{
		ID:                uuid.New().String(),
		UserID:            req.UserID,
		LocationID:        location.ID,
		LocationName:      location.Name,
		Action:            string(award.ActionType),
		ActionDescription: award.ActionDescription,
		BasePoints:        award.BasePoints,
		BonusPoints:       award.BonusPoints,
		TotalPoints:       award.TotalPoints,
		BonusReasons:      pq.StringArray(award.BonusReasons),
		Latitude:          location.Latitude,
		Longitude:         location.Longitude,
		Address:           location.Address,
		Region:            "Himachal Pradesh",
		CheckinType:       "qr-scan",
		Timestamp:         timestamp,
	}
	if err := cc.Store.CreateCheckin(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to process check-in. Please try again.",
		})
		return
	}

	// Apply the award. Story unlocks go through the shared idempotent
	// unlock path so a repeat unlock grants nothing extra; every other
	// action applies directly to the ledger.
	var (
		storyUnlocked bool
		story         *models.CulturalStory
		newBadges     []string
	)
	if award.StoryEligible {
		result, err := cc.Stories.UnlockStoryWithPoints(c.Request.Context(), location.Story.ID, req.UserID, award.TotalPoints)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to process check-in. Please try again.",
			})
			return
		}
		storyUnlocked = true
		story = result.Story
		newBadges = result.NewBadges
	} else {
		newBadges = cc.Ledgers.ForUser(req.UserID).ApplyAward(award, rec)
	}

	nextActions := make([]models.EcoAction, 0, 2)
	for _, act := range location.AvailableActions {
		if act.Type != award.ActionType && len(nextActions) < 2 {
			nextActions = append(nextActions, act)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"checkin":       rec,
			"pointsEarned":  award.TotalPoints,
			"basePoints":    award.BasePoints,
			"bonusPoints":   award.BonusPoints,
			"bonusReasons":  award.BonusReasons,
			"location":      location.Name,
			"action":        award.ActionDescription,
			"storyUnlocked": storyUnlocked,
			"story":         story,
			"newBadges":     newBadges,
			"message":       fmt.Sprintf("Successfully checked in at %s! You earned %d eco-points.", location.Name, award.TotalPoints),
			"nextActions":   nextActions,
		},
	})
}
